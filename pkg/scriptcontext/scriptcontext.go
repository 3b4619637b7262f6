// Package scriptcontext decides, from inside a package-manager lifecycle
// script, whether the package's own project is being installed or the
// package is a dependency of something else, and runs a follow-up command
// only in the former case.
package scriptcontext

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/codysoyland/scriptcontext/pkg/hook"
	"github.com/codysoyland/scriptcontext/pkg/installctx"
)

// ErrNoSpawner is returned when a Request carries no spawn capability
var ErrNoSpawner = errors.New("spawn capability is required")

// Dispatch runs a single request with the provided options (simple API)
func Dispatch(req Request, opts ...Option) error {
	d, err := New(opts...)
	if err != nil {
		return err
	}
	return d.Dispatch(req)
}

// Context reports the install context for dirs without dispatching anything
func Context(dirs installctx.Dirs) installctx.InstallContext {
	return dirs.Resolve()
}

// New creates a new Dispatcher
func New(opts ...Option) (*Dispatcher, error) {
	config := &Config{
		Logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if config.Policy == nil {
		return nil, fmt.Errorf("must provide policy")
	}

	return &Dispatcher{config: config}, nil
}

// Plan resolves the install context for dirs and returns the action selected
// for event, if any. The action's Dir is the package directory. Plan has no
// side effects.
func (d *Dispatcher) Plan(event hook.Event, dirs installctx.Dirs) (hook.Action, installctx.InstallContext, bool) {
	ic := dirs.Resolve()
	if ic != installctx.Project || event == "" {
		return hook.Action{}, ic, false
	}

	action, ok := d.config.Policy.Select(event)
	if !ok {
		return hook.Action{}, ic, false
	}
	// Project implies Package is set.
	action.Dir = *dirs.Package
	return action, ic, true
}

// Dispatch spawns the follow-up command for req when the policy selects one.
// A spawn failure is returned exactly as the Spawner reported it.
func (d *Dispatcher) Dispatch(req Request) error {
	if req.Spawn == nil {
		return ErrNoSpawner
	}

	log := d.config.Logger.With().Str("event", string(req.Lifecycle)).Logger()

	action, ic, ok := d.Plan(req.Lifecycle, req.Dirs)
	log.Debug().
		Stringer("context", ic).
		Str("project_dir", deref(req.Dirs.Project)).
		Str("package_dir", deref(req.Dirs.Package)).
		Msg("resolved install context")

	if !ok {
		log.Debug().Stringer("context", ic).Msg("no follow-up action")
		return nil
	}

	log.Info().
		Str("command", action.Command).
		Strs("args", action.Args).
		Str("dir", action.Dir).
		Msg("running follow-up command")

	return req.Spawn.Spawn(action.Dir, action.Command, action.Args)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
