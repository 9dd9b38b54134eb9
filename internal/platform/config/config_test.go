package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("VERISTUB_ADDR", "")
		t.Setenv("VERISTUB_ENVIRONMENT", "")
		t.Setenv("VERISTUB_AUTO_DECISION_DELAY", "")

		cfg := FromEnv()
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "sandbox", cfg.Environment)
		assert.Equal(t, DefaultAutoDecisionDelay, cfg.AutoDecisionDelay)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("VERISTUB_ADDR", ":9090")
		t.Setenv("VERISTUB_ENVIRONMENT", "staging")
		t.Setenv("VERISTUB_AUTO_DECISION_DELAY", "50ms")

		cfg := FromEnv()
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "staging", cfg.Environment)
		assert.Equal(t, 50*time.Millisecond, cfg.AutoDecisionDelay)
	})

	t.Run("invalid delay falls back to default", func(t *testing.T) {
		t.Setenv("VERISTUB_AUTO_DECISION_DELAY", "soon")
		assert.Equal(t, DefaultAutoDecisionDelay, FromEnv().AutoDecisionDelay)
	})

	t.Run("negative delay falls back to default", func(t *testing.T) {
		t.Setenv("VERISTUB_AUTO_DECISION_DELAY", "-1s")
		assert.Equal(t, DefaultAutoDecisionDelay, FromEnv().AutoDecisionDelay)
	})
}
