package scriptcontext

import (
	"github.com/rs/zerolog"

	"github.com/codysoyland/scriptcontext/pkg/hook"
	"github.com/codysoyland/scriptcontext/pkg/installctx"
)

// Dispatcher decides whether a lifecycle event runs a follow-up command
type Dispatcher struct {
	config *Config
}

// Config holds all configuration options
type Config struct {
	// Policy selects the follow-up action for an event in the project
	// context. Required.
	Policy hook.Policy
	Logger zerolog.Logger
}

// Option represents a functional option for configuration
type Option func(*Config) error

// Request is everything a single lifecycle invocation supplies
type Request struct {
	Lifecycle hook.Event      // Empty when the host has no event context
	Dirs      installctx.Dirs // Project = initiating dir, Package = current dir
	Spawn     hook.Spawner
}
