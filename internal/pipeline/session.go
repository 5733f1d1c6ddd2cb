// Package pipeline wires decode, normalize, filter, aggregate, and annotate
// into one session. The canonical incident store and the cached demographics
// are immutable after Load; every filter change rebuilds the derived views
// whole and swaps the published snapshot.
package pipeline

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/dc-analytics/crimelens/internal/aggregate"
	"github.com/dc-analytics/crimelens/internal/config"
	"github.com/dc-analytics/crimelens/internal/correlate"
	"github.com/dc-analytics/crimelens/internal/demographics"
	"github.com/dc-analytics/crimelens/internal/filter"
	"github.com/dc-analytics/crimelens/internal/ingest"
	"github.com/dc-analytics/crimelens/internal/model"
)

// Session holds one loaded extract and its published views.
type Session struct {
	id        string
	incidents []model.Incident // canonical store, read-only after Load
	stats     *ingest.Stats
	demo      *model.DerivedDemographics
	engine    *aggregate.Engine
	annotator *correlate.Annotator

	mu    sync.RWMutex
	spec  model.FilterSpec
	views *model.Views
}

// Load builds a session: read and normalize the extract, load the
// demographics (when a reference directory is configured), and publish the
// unfiltered views. Any load failure is fatal; no partial store is published.
func Load(ctx context.Context, cfg *config.Config) (*Session, error) {
	incidents, stats, err := ingest.LoadFile(cfg.Source.Path, cfg.Source)
	if err != nil {
		return nil, err
	}

	var demo *model.DerivedDemographics
	if cfg.Demographics.Dir != "" {
		demo, err = demographics.NewLoader(cfg.Demographics).Load()
		if err != nil {
			return nil, err
		}
	}

	s := &Session{
		id:        uuid.NewString(),
		incidents: incidents,
		stats:     stats,
		demo:      demo,
		engine:    aggregate.NewEngine(cfg.Aggregate),
		annotator: correlate.NewAnnotator(cfg.Correlate),
	}

	if err := s.SetFilter(ctx, model.FilterSpec{}); err != nil {
		return nil, eris.Wrap(err, "pipeline: initial aggregation")
	}

	zap.L().Info("session loaded",
		zap.String("session", s.id),
		zap.Int("incidents", len(incidents)),
		zap.Bool("demographics", demo != nil),
	)

	return s, nil
}

// SetFilter recomputes every derived view for the given spec and publishes
// the new snapshot. The canonical store is never touched.
func (s *Session) SetFilter(ctx context.Context, spec model.FilterSpec) error {
	filtered := filter.Apply(s.incidents, spec)

	views, err := s.engine.Run(ctx, filtered, spec)
	if err != nil {
		return eris.Wrap(err, "pipeline: aggregate")
	}
	s.annotator.Annotate(&views.Areas, s.demo)

	s.mu.Lock()
	s.spec = spec
	s.views = views
	s.mu.Unlock()

	return nil
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string { return s.id }

// Incidents returns the canonical store. Callers must not mutate it.
func (s *Session) Incidents() []model.Incident { return s.incidents }

// Stats returns the load statistics.
func (s *Session) Stats() *ingest.Stats { return s.stats }

// Demographics returns the cached derived demographics, nil when no
// reference directory was configured.
func (s *Session) Demographics() *model.DerivedDemographics { return s.demo }

// Views returns the currently published snapshot.
func (s *Session) Views() *model.Views {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.views
}

// Filter returns the currently published filter spec.
func (s *Session) Filter() model.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spec
}
