package config

import (
	"os"
	"time"
)

// Server captures process-level configuration for the simulator.
type Server struct {
	Addr string

	// Environment labels new inquiries ("sandbox" unless overridden).
	Environment string

	// AutoDecisionDelay is the simulated processing latency before an
	// automatic approve/decline lands. Consumers synchronize on it, so it is
	// part of the behavioral contract, not a tuning knob.
	AutoDecisionDelay time.Duration
}

// DefaultAutoDecisionDelay matches the latency consumers were built against.
const DefaultAutoDecisionDelay = 2 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("VERISTUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("VERISTUB_ENVIRONMENT")
	if env == "" {
		env = "sandbox"
	}

	delay := DefaultAutoDecisionDelay
	if raw := os.Getenv("VERISTUB_AUTO_DECISION_DELAY"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed >= 0 {
			delay = parsed
		}
	}

	return Server{
		Addr:              addr,
		Environment:       env,
		AutoDecisionDelay: delay,
	}
}
