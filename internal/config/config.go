// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"bennu-impact-sim/internal/impact"
)

// Calculator selects the impact models and physical constants.
type Calculator struct {
	ThresholdModel     string  `yaml:"threshold_model"`
	ConsequenceModel   string  `yaml:"consequence_model"`
	SafeMissDistanceKM float64 `yaml:"safe_miss_distance_km"`
	OceanProbability   float64 `yaml:"ocean_probability"`
	DensityKgM3        float64 `yaml:"density_kg_m3"`
	Seed               int64   `yaml:"seed"`
}

// Defaults are the parameters used when a run does not specify them.
type Defaults struct {
	DiameterKM       float64 `yaml:"diameter_km"`
	VelocityKMS      float64 `yaml:"velocity_km_s"`
	DeflectionForce  float64 `yaml:"deflection_force_cm_s"`
	ApproachAngleDeg float64 `yaml:"approach_angle_deg"`
	LeadTimeYears    float64 `yaml:"lead_time_years"`
}

// Sweep describes the deflection force × lead time grid of a sweep run.
type Sweep struct {
	ForceMinCMS  float64 `yaml:"force_min_cm_s"`
	ForceMaxCMS  float64 `yaml:"force_max_cm_s"`
	ForceSteps   int     `yaml:"force_steps"`
	LeadMinYears float64 `yaml:"lead_min_years"`
	LeadMaxYears float64 `yaml:"lead_max_years"`
	LeadSteps    int     `yaml:"lead_steps"`
}

// Server configures the admin HTTP server.
type Server struct {
	Addr            string `yaml:"addr"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
	Burst           int    `yaml:"burst"`
}

// Greptime configures result export to GreptimeDB. An empty Endpoint
// disables export.
type Greptime struct {
	Endpoint string `yaml:"endpoint"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
}

// Config is the root configuration.
type Config struct {
	Calculator    Calculator `yaml:"calculator"`
	Defaults      Defaults   `yaml:"defaults"`
	Sweep         Sweep      `yaml:"sweep"`
	Server        Server     `yaml:"server"`
	Greptime      Greptime   `yaml:"greptime"`
	ScenariosFile string     `yaml:"scenarios_file"`
}

// Default returns the built-in configuration: Bennu at 12.6 km/s, the
// safety-margin threshold and the illustrative consequence model.
func Default() *Config {
	return &Config{
		Calculator: Calculator{
			ThresholdModel:     string(impact.ThresholdSafetyMargin),
			ConsequenceModel:   string(impact.ModelIllustrative),
			SafeMissDistanceKM: impact.SafeMissDistanceKM,
			OceanProbability:   impact.DefaultOceanProbability,
			DensityKgM3:        impact.BennuDensity,
		},
		Defaults: Defaults{
			DiameterKM:       impact.BennuData.DiameterKM,
			VelocityKMS:      impact.BennuData.VelocityKMS,
			ApproachAngleDeg: 45,
			LeadTimeYears:    impact.DefaultLeadTimeYears,
		},
		Sweep: Sweep{
			ForceMinCMS:  0,
			ForceMaxCMS:  1,
			ForceSteps:   6,
			LeadMinYears: 1,
			LeadMaxYears: 20,
			LeadSteps:    4,
		},
		Server: Server{
			Addr:            ":8080",
			RateLimitPerMin: 600,
			Burst:           20,
		},
		Greptime: Greptime{
			Port:     4001,
			Database: "public",
			Table:    "impact_results",
		},
	}
}

// Load loads YAML config and validates it against a CUE schema. An empty
// cueSchemaPath uses the embedded schema.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	// Validate with CUE first
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	// Keys missing from the file keep their defaults.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	log.Printf("Loaded configuration: %+v", *cfg)

	return cfg, nil
}

// LoadDefault returns Default with environment overrides applied. It is used
// when no config file is given.
func LoadDefault() (*Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides deployment values from the environment.
func (c *Config) applyEnv() error {
	if v := os.Getenv("GREPTIMEDB_ENDPOINT"); v != "" {
		c.Greptime.Endpoint = v
	}
	if v := os.Getenv("GREPTIMEDB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GREPTIMEDB_PORT: %w", err)
		}
		c.Greptime.Port = port
	}
	if v := os.Getenv("GREPTIMEDB_DATABASE"); v != "" {
		c.Greptime.Database = v
	}
	if v := os.Getenv("GREPTIMEDB_TABLE"); v != "" {
		c.Greptime.Table = v
	}
	if v := os.Getenv("IMPACT_SIM_ADDR"); v != "" {
		c.Server.Addr = v
	}
	return nil
}

// CalculatorOptions converts the calculator section into impact.Options
// with a RandomLocator seeded from the config.
func (c *Config) CalculatorOptions() (impact.Options, error) {
	threshold, err := impact.ParseThresholdModel(c.Calculator.ThresholdModel)
	if err != nil {
		return impact.Options{}, err
	}
	model, err := impact.ParseConsequenceModel(c.Calculator.ConsequenceModel)
	if err != nil {
		return impact.Options{}, err
	}
	return impact.Options{
		Threshold:          threshold,
		Consequences:       model,
		SafeMissDistanceKM: c.Calculator.SafeMissDistanceKM,
		DensityKgM3:        c.Calculator.DensityKgM3,
		Locator:            impact.NewRandomLocator(c.Calculator.Seed, c.Calculator.OceanProbability),
	}, nil
}

// NewCalculator builds an impact.Calculator from the config.
func (c *Config) NewCalculator() (*impact.Calculator, error) {
	opts, err := c.CalculatorOptions()
	if err != nil {
		return nil, err
	}
	return impact.NewCalculator(opts)
}

// DefaultParams returns the default simulation parameters and lead time.
func (c *Config) DefaultParams() (impact.Params, float64) {
	return impact.Params{
		DiameterKM:       c.Defaults.DiameterKM,
		VelocityKMS:      c.Defaults.VelocityKMS,
		DeflectionForce:  c.Defaults.DeflectionForce,
		ApproachAngleDeg: impact.Angle(c.Defaults.ApproachAngleDeg),
	}, c.Defaults.LeadTimeYears
}
