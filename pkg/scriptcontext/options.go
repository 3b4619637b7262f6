package scriptcontext

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/codysoyland/scriptcontext/pkg/hook"
)

// WithPolicy sets the policy used to select follow-up actions
func WithPolicy(p hook.Policy) Option {
	return func(c *Config) error {
		if p == nil {
			return fmt.Errorf("policy cannot be nil")
		}
		c.Policy = p
		return nil
	}
}

// WithTable is shorthand for WithPolicy(hook.Table(t))
func WithTable(t hook.Table) Option {
	return WithPolicy(t)
}

// WithLogger sets the logger for dispatch decisions
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}
