package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 10000, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SUPERVITY_LLM_ENABLED", "true")
	t.Setenv("SUPERVITY_LLM_MODEL", "mistral")
	t.Setenv("SUPERVITY_LLM_TIMEOUT_MS", "2500")
	t.Setenv("SUPERVITY_LLM_CHAT_TIMEOUT_MS", "30000")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskChat))
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskRecommend), "task default untouched")
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks[TaskChat] = TaskConfig{Temperature: 0.7, MaxTokens: 512}

	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskChat))
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("SUPERVITY_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("SUPERVITY_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
