package hook

import (
	"slices"
)

// Event names the package-manager lifecycle hook that triggered execution
type Event string

const (
	EventPreinstall  Event = "preinstall"
	EventInstall     Event = "install"
	EventPostinstall Event = "postinstall"
	EventPrepare     Event = "prepare"
)

// DefaultEvents are the install-phase events a follow-up command is bound to
// when nothing else is configured
var DefaultEvents = []Event{EventPreinstall, EventInstall, EventPostinstall, EventPrepare}

// Action is a follow-up command selected for an event
type Action struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
	Dir     string   `json:"dir,omitempty"` // Filled in by the dispatcher
}

// Clone returns a copy of a whose Args can be mutated independently
func (a Action) Clone() Action {
	a.Args = slices.Clone(a.Args)
	return a
}

// Script is the name of a package script broken into its components,
// e.g. "postinstall" + ":" + "project".
type Script struct {
	Lifecycle Event
	Delimiter string
	Suffix    string
}

// String joins the components into the script name
func (s Script) String() string {
	return string(s.Lifecycle) + s.Delimiter + s.Suffix
}
