// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/eegica/ica"
	"github.com/katalvlaran/eegica/logging"
	"github.com/katalvlaran/eegica/report"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces every environment override, e.g. EEGICA_LOG_LEVEL.
const envPrefix = "EEGICA_"

// Config holds the command settings. Precedence, lowest first: defaults,
// the --config YAML file, EEGICA_* variables, command-line flags.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogJSON  bool   `yaml:"log_json"`

	// ProductWorkers splits each matrix product across goroutines.
	ProductWorkers int `yaml:"product_workers" validate:"min=1,max=256"`
	// CandidateWorkers bounds concurrent reconstructions in the candidates command.
	CandidateWorkers int `yaml:"candidate_workers" validate:"min=1,max=256"`

	Band BandConfig `yaml:"band"`

	// RoundTripWarn is the round-trip error above which clean logs a warning
	// that mixing and unmixing are not inverses of each other.
	RoundTripWarn float64 `yaml:"round_trip_warn" validate:"finite,gt=0"`
}

// BandConfig is the frequency band, in Hz, reported as blink power.
type BandConfig struct {
	Low  float64 `yaml:"low" validate:"finite,gte=0"`
	High float64 `yaml:"high" validate:"finite,gtfield=Low"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LogLevel:         "info",
		ProductWorkers:   ica.DefaultProductWorkers,
		CandidateWorkers: ica.DefaultCandidateWorkers,
		Band:             BandConfig{Low: report.DefaultBandLow, High: report.DefaultBandHigh},
		RoundTripWarn:    1e-6,
	}
}

func newConfigValidator() *validator.Validate {
	v := validator.New()
	// strconv and yaml.v3 both accept inf and nan spellings
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

var configValidate = newConfigValidator()

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}

	return nil
}

// Level parses LogLevel; call after Validate.
func (c Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}

// LoadConfig applies the file at path (if any) and the environment seen
// through getenv on top of DefaultConfig. It does not validate; flags are
// applied by the caller before Validate.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := loadConfigFromEnv(&cfg, getenv); err != nil {
		return cfg, fmt.Errorf("load config from environment: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// normalize canonicalises free-form fields before validation.
func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadConfigFromEnv applies EEGICA_* overrides. A variable that is set but
// does not parse is an error rather than being ignored.
func loadConfigFromEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(envPrefix + "LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sLOG_JSON: %w", envPrefix, err)
		}
		cfg.LogJSON = b
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PRODUCT_WORKERS", &cfg.ProductWorkers},
		{"CANDIDATE_WORKERS", &cfg.CandidateWorkers},
	}
	for _, e := range ints {
		if v := getenv(envPrefix + e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, e.key, err)
			}
			*e.dst = n
		}
	}

	floatVars := []struct {
		key string
		dst *float64
	}{
		{"BAND_LOW", &cfg.Band.Low},
		{"BAND_HIGH", &cfg.Band.High},
		{"ROUND_TRIP_WARN", &cfg.RoundTripWarn},
	}
	for _, e := range floatVars {
		if v := getenv(envPrefix + e.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, e.key, err)
			}
			*e.dst = f
		}
	}

	return nil
}
