// Package config loads the server configuration from an optional YAML file
// overlaid with SUPERVITY_* environment variables. Environment always wins;
// a missing file just means defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/llm"
	"github.com/supervity/supervity/internal/planner"
)

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type PlannerConfig struct {
	UrgentDays       *int     `yaml:"urgent_days"`
	UpcomingDays     *int     `yaml:"upcoming_days"`
	DailyStudyBudget *float64 `yaml:"daily_study_budget"`
	MaxSessionLength *float64 `yaml:"max_session_length"`
	HeavyLoadHours   *float64 `yaml:"heavy_load_hours"`
	LargeAssignment  *float64 `yaml:"large_assignment"`
	DayStartHour     *int     `yaml:"day_start_hour"`
}

type LoggingConfig struct {
	Mode string `yaml:"mode"` // "dev" or "prod"
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Planner  PlannerConfig  `yaml:"planner"`
	Logging  LoggingConfig  `yaml:"logging"`
}

func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8000"},
		Database: DatabaseConfig{Path: "supervity.db"},
		Logging:  LoggingConfig{Mode: "dev"},
	}
}

// Load reads path (when non-empty and present) and then applies environment
// overrides. LLM configuration is env-only and loaded separately via
// llm.LoadConfig.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to defaults
		default:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Addr = domain.CoalesceStr(os.Getenv("SUPERVITY_ADDR"), cfg.Server.Addr)
	cfg.Database.Path = domain.CoalesceStr(os.Getenv("SUPERVITY_DB_PATH"), cfg.Database.Path)
	cfg.Logging.Mode = domain.CoalesceStr(os.Getenv("SUPERVITY_LOG_MODE"), cfg.Logging.Mode)
	if v := os.Getenv("SUPERVITY_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.CORSOrigins = origins
	}
	if v := os.Getenv("SUPERVITY_URGENT_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Planner.UrgentDays = &n
		}
	}
	if v := os.Getenv("SUPERVITY_UPCOMING_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Planner.UpcomingDays = &n
		}
	}
	if v := os.Getenv("SUPERVITY_DAILY_STUDY_BUDGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Planner.DailyStudyBudget = &f
		}
	}
	if v := os.Getenv("SUPERVITY_MAX_SESSION_LENGTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Planner.MaxSessionLength = &f
		}
	}
}

// PlannerConfig materializes the planner tuning, starting from the engine
// defaults and overriding only the fields the file or environment set.
// Out-of-range values are clamped by the engine itself.
func (c Config) PlannerConfig() planner.Config {
	p := planner.DefaultConfig()
	p.UrgentDays = domain.IntFromPtrWithDefault(p.UrgentDays, c.Planner.UrgentDays)
	p.UpcomingDays = domain.IntFromPtrWithDefault(p.UpcomingDays, c.Planner.UpcomingDays)
	p.DailyStudyBudget = domain.Float64FromPtrWithDefault(p.DailyStudyBudget, c.Planner.DailyStudyBudget)
	p.MaxSessionLength = domain.Float64FromPtrWithDefault(p.MaxSessionLength, c.Planner.MaxSessionLength)
	p.HeavyLoadHours = domain.Float64FromPtrWithDefault(p.HeavyLoadHours, c.Planner.HeavyLoadHours)
	p.LargeAssignment = domain.Float64FromPtrWithDefault(p.LargeAssignment, c.Planner.LargeAssignment)
	p.DayStartHour = domain.IntFromPtrWithDefault(p.DayStartHour, c.Planner.DayStartHour)
	return p.Sanitized()
}

// LLM returns the environment-driven LLM configuration.
func (c Config) LLM() llm.Config {
	return llm.LoadConfig()
}
