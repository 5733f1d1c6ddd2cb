package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source       SourceConfig       `yaml:"source" mapstructure:"source"`
	Demographics DemographicsConfig `yaml:"demographics" mapstructure:"demographics"`
	Aggregate    AggregateConfig    `yaml:"aggregate" mapstructure:"aggregate"`
	Correlate    CorrelateConfig    `yaml:"correlate" mapstructure:"correlate"`
	Server       ServerConfig       `yaml:"server" mapstructure:"server"`
	Log          LogConfig          `yaml:"log" mapstructure:"log"`
}

// SourceConfig locates the incident extract and maps header columns by role.
type SourceConfig struct {
	Path    string        `yaml:"path" mapstructure:"path"`
	Columns ColumnMapping `yaml:"columns" mapstructure:"columns"`
}

// ColumnMapping names the extract's header columns by role. Defaults match
// the DC open-data crime extract.
type ColumnMapping struct {
	Latitude         string `yaml:"latitude" mapstructure:"latitude"`
	Longitude        string `yaml:"longitude" mapstructure:"longitude"`
	X                string `yaml:"x" mapstructure:"x"`
	Y                string `yaml:"y" mapstructure:"y"`
	ReportedAt       string `yaml:"reported_at" mapstructure:"reported_at"`
	StartedAt        string `yaml:"started_at" mapstructure:"started_at"`
	EndedAt          string `yaml:"ended_at" mapstructure:"ended_at"`
	Shift            string `yaml:"shift" mapstructure:"shift"`
	Method           string `yaml:"method" mapstructure:"method"`
	Category         string `yaml:"category" mapstructure:"category"`
	Block            string `yaml:"block" mapstructure:"block"`
	Ward             string `yaml:"ward" mapstructure:"ward"`
	District         string `yaml:"district" mapstructure:"district"`
	PSA              string `yaml:"psa" mapstructure:"psa"`
	Cluster          string `yaml:"cluster" mapstructure:"cluster"`
	BusinessDistrict string `yaml:"business_district" mapstructure:"business_district"`
	CaseNumber       string `yaml:"case_number" mapstructure:"case_number"`
	ObjectID         string `yaml:"object_id" mapstructure:"object_id"`
	BlockGroup       string `yaml:"block_group" mapstructure:"block_group"`
	CensusTract      string `yaml:"census_tract" mapstructure:"census_tract"`
	VotingPrecinct   string `yaml:"voting_precinct" mapstructure:"voting_precinct"`
}

// DemographicsConfig locates the reference tables and names the target region.
type DemographicsConfig struct {
	Dir          string            `yaml:"dir" mapstructure:"dir"`
	Region       string            `yaml:"region" mapstructure:"region"`
	RegionColumn string            `yaml:"region_column" mapstructure:"region_column"`
	Tables       map[string]string `yaml:"tables" mapstructure:"tables"` // domain -> filename
}

// AggregateConfig tunes the five view reducers.
type AggregateConfig struct {
	TargetYear         int      `yaml:"target_year" mapstructure:"target_year"`
	IncludeZeroCoords  bool     `yaml:"include_zero_coords" mapstructure:"include_zero_coords"`
	TopCategories      int      `yaml:"top_categories" mapstructure:"top_categories"`
	TopAreas           int      `yaml:"top_areas" mapstructure:"top_areas"`
	PropertyCategories []string `yaml:"property_categories" mapstructure:"property_categories"`
}

// CorrelateConfig holds the per-metric threshold and expectation tables.
type CorrelateConfig struct {
	HighCrimeRatio float64        `yaml:"high_crime_ratio" mapstructure:"high_crime_ratio"`
	LowCrimeRatio  float64        `yaml:"low_crime_ratio" mapstructure:"low_crime_ratio"`
	Metrics        []MetricConfig `yaml:"metrics" mapstructure:"metrics"`
}

// MetricConfig classifies one demographic metric. Expected is the sign of
// the correlation the metric is assumed to have with incident counts:
// "negative" (e.g. income) or "positive" (e.g. poverty).
type MetricConfig struct {
	Name     string  `yaml:"name" mapstructure:"name"`
	High     float64 `yaml:"high" mapstructure:"high"`
	Low      float64 `yaml:"low" mapstructure:"low"`
	Expected string  `yaml:"expected" mapstructure:"expected"`
}

// ServerConfig configures the view API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CRIMELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)

	v.SetDefault("source.columns.latitude", "LATITUDE")
	v.SetDefault("source.columns.longitude", "LONGITUDE")
	v.SetDefault("source.columns.x", "X")
	v.SetDefault("source.columns.y", "Y")
	v.SetDefault("source.columns.reported_at", "REPORT_DAT")
	v.SetDefault("source.columns.started_at", "START_DATE")
	v.SetDefault("source.columns.ended_at", "END_DATE")
	v.SetDefault("source.columns.shift", "SHIFT")
	v.SetDefault("source.columns.method", "METHOD")
	v.SetDefault("source.columns.category", "OFFENSE")
	v.SetDefault("source.columns.block", "BLOCK")
	v.SetDefault("source.columns.ward", "WARD")
	v.SetDefault("source.columns.district", "ANC")
	v.SetDefault("source.columns.psa", "PSA")
	v.SetDefault("source.columns.cluster", "NEIGHBORHOOD_CLUSTER")
	v.SetDefault("source.columns.business_district", "BID")
	v.SetDefault("source.columns.case_number", "CCN")
	v.SetDefault("source.columns.object_id", "OBJECTID")
	v.SetDefault("source.columns.block_group", "BLOCK_GROUP")
	v.SetDefault("source.columns.census_tract", "CENSUS_TRACT")
	v.SetDefault("source.columns.voting_precinct", "VOTING_PRECINCT")

	v.SetDefault("demographics.region", "District of Columbia")
	v.SetDefault("demographics.region_column", "NAME")
	v.SetDefault("demographics.tables", map[string]string{
		"income":         "income.csv",
		"education":      "education.csv",
		"race":           "race.csv",
		"poverty":        "poverty.csv",
		"housing":        "housing_value.csv",
		"mobility":       "mobility.csv",
		"transportation": "transportation.csv",
		"tenure":         "tenure.csv",
	})

	v.SetDefault("aggregate.target_year", 2024)
	v.SetDefault("aggregate.include_zero_coords", false)
	v.SetDefault("aggregate.top_categories", 10)
	v.SetDefault("aggregate.top_areas", 5)
	v.SetDefault("aggregate.property_categories", []string{
		"THEFT/OTHER", "THEFT F/AUTO", "MOTOR VEHICLE THEFT", "BURGLARY", "ARSON",
	})

	v.SetDefault("correlate.high_crime_ratio", 1.2)
	v.SetDefault("correlate.low_crime_ratio", 0.8)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if len(cfg.Correlate.Metrics) == 0 {
		cfg.Correlate.Metrics = DefaultMetrics()
	}

	return &cfg, nil
}

// DefaultMetrics is the illustrative threshold table used when the config
// file does not provide one. Percentage metrics are on a 0-100 scale,
// income is USD.
func DefaultMetrics() []MetricConfig {
	return []MetricConfig{
		{Name: "median_income", High: 120000, Low: 90000, Expected: "negative"},
		{Name: "higher_ed_pct", High: 60, Low: 40, Expected: "negative"},
		{Name: "poverty_pct", High: 18, Low: 10, Expected: "positive"},
		{Name: "high_value_housing_pct", High: 35, Low: 15, Expected: "negative"},
		{Name: "renter_pct", High: 65, Low: 45, Expected: "positive"},
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
