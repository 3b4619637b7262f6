// Package hook defines lifecycle events, the follow-up actions bound to them,
// and the spawn capability used to run those actions.
package hook

import (
	"slices"
)

// Spawner launches a command synchronously in dir with inherited standard
// streams. Whatever error it returns is handed back to the caller untouched.
type Spawner interface {
	Spawn(dir, command string, args []string) error
}

// SpawnFunc adapts a plain function to Spawner
type SpawnFunc func(dir, command string, args []string) error

// Spawn calls f
func (f SpawnFunc) Spawn(dir, command string, args []string) error {
	return f(dir, command, args)
}

// Policy selects the follow-up action for an event. It is only consulted for
// the project install context.
type Policy interface {
	Select(event Event) (Action, bool)
}

// Table binds events to explicit actions
type Table map[Event]Action

// Select returns the action bound to event
func (t Table) Select(event Event) (Action, bool) {
	if event == "" {
		return Action{}, false
	}
	action, ok := t[event]
	if !ok || action.Command == "" {
		return Action{}, false
	}
	return action.Clone(), true
}

// Bind returns a Table mapping every event to the same command
func Bind(events []Event, command string, args ...string) Table {
	t := make(Table, len(events))
	for _, event := range events {
		t[event] = Action{Command: command, Args: slices.Clone(args)}
	}
	return t
}

// ScriptPolicy runs "<Manager> run <event><Delimiter><Suffix>" for the
// listed events, so "postinstall" becomes "npm run postinstall:project".
type ScriptPolicy struct {
	Manager   string
	Delimiter string
	Suffix    string
	Events    []Event
}

// Select implements Policy
func (p ScriptPolicy) Select(event Event) (Action, bool) {
	if p.Manager == "" || event == "" || !slices.Contains(p.Events, event) {
		return Action{}, false
	}
	script := Script{Lifecycle: event, Delimiter: p.Delimiter, Suffix: p.Suffix}
	return Action{Command: p.Manager, Args: []string{"run", script.String()}}, true
}

// Chain tries each policy in order and returns the first selection
type Chain []Policy

// Select implements Policy
func (c Chain) Select(event Event) (Action, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if action, ok := p.Select(event); ok {
			return action, true
		}
	}
	return Action{}, false
}
