package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, "supervity.db", cfg.Database.Path)
	assert.Equal(t, "dev", cfg.Logging.Mode)

	p := cfg.PlannerConfig()
	assert.Equal(t, 3, p.UrgentDays)
	assert.Equal(t, 14, p.UpcomingDays)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "supervity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  cors_origins:
    - "https://app.example.edu"
database:
  path: /var/lib/supervity/data.db
planner:
  urgent_days: 2
  daily_study_budget: 6
logging:
  mode: prod
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://app.example.edu"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "/var/lib/supervity/data.db", cfg.Database.Path)
	assert.Equal(t, "prod", cfg.Logging.Mode)

	p := cfg.PlannerConfig()
	assert.Equal(t, 2, p.UrgentDays)
	assert.InDelta(t, 6.0, p.DailyStudyBudget, 1e-9)
	assert.Equal(t, 14, p.UpcomingDays, "unset fields keep engine defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "supervity.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))

	t.Setenv("SUPERVITY_ADDR", ":7000")
	t.Setenv("SUPERVITY_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SUPERVITY_URGENT_DAYS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 5, cfg.PlannerConfig().UrgentDays)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Server.Addr)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPlannerConfig_HostileValuesClamped(t *testing.T) {
	t.Setenv("SUPERVITY_DAILY_STUDY_BUDGET", "500")
	t.Setenv("SUPERVITY_MAX_SESSION_LENGTH", "-3")

	cfg, err := Load("")
	require.NoError(t, err)

	p := cfg.PlannerConfig()
	assert.InDelta(t, 4.0, p.DailyStudyBudget, 1e-9)
	assert.InDelta(t, 2.0, p.MaxSessionLength, 1e-9)
}
