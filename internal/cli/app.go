package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codysoyland/scriptcontext/internal/config"
	clierrors "github.com/codysoyland/scriptcontext/internal/errors"
	"github.com/codysoyland/scriptcontext/internal/logging"
	"github.com/codysoyland/scriptcontext/pkg/executor"
	"github.com/codysoyland/scriptcontext/pkg/hook"
	"github.com/codysoyland/scriptcontext/pkg/hostenv"
)

// app carries the host collaborators and per-invocation state shared by the
// commands
type app struct {
	lookup  hostenv.LookupFunc
	environ []string // nil reads SCRIPTCONTEXT_* from the process
	spawner hook.Spawner

	// persistent flags
	configPath string
	verbose    bool
	logLevel   string
	noColor    bool
	event      string
	projectDir string
	packageDir string
	delimiter  string
	projectSfx string
	packageSfx string
	manager    string

	cfg *config.Configuration
	log zerolog.Logger
}

// newApp wires the real environment and process spawner
func newApp() *app {
	return &app{
		lookup:  os.LookupEnv,
		spawner: executor.New(),
		log:     zerolog.Nop(),
	}
}

// setup loads configuration and the logger. It runs before every command
// except version.
func (a *app) setup(cmd *cobra.Command) error {
	raw := hostenv.Gather(a.lookup)
	searchDir := a.packageDir
	if searchDir == "" && raw.Dirs.Package != nil {
		searchDir = *raw.Dirs.Package
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: a.configPath,
		SearchDir:  searchDir,
		Environ:    a.environ,
	})
	if err != nil {
		return clierrors.InvalidConfig(err)
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		cfg.Delimiter = a.delimiter
	}
	if flags.Changed("project") {
		cfg.ProjectSuffix = a.projectSfx
	}
	if flags.Changed("package") {
		cfg.PackageSuffix = a.packageSfx
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if a.noColor {
		cfg.NoColor = true
	}
	if flags.Changed("package-manager") {
		if hostenv.ParsePackageManager(a.manager) == hostenv.Unknown {
			return clierrors.UnknownPackageManager(a.manager)
		}
		cfg.PackageManager = a.manager
	}
	if err := config.Validate(cfg); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Argument, "invalid flag value",
			"Check the flag values passed on the command line")
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.LogLevel, NoColor: cfg.NoColor})
	if err != nil {
		return clierrors.InvalidConfig(err)
	}

	a.cfg = cfg
	a.log = logger
	if cfg.Source != "" {
		a.log.Debug().Str("path", cfg.Source).Msg("loaded config file")
	}
	return nil
}

// signals gathers the host signals and applies flag overrides, the manifest
// root search and the package manager override
func (a *app) signals() hostenv.Signals {
	s := hostenv.Gather(a.lookup)
	if a.event != "" {
		s.Lifecycle = hook.Event(a.event)
	}
	if a.projectDir != "" {
		dir := a.projectDir
		s.Dirs.Project = &dir
	}
	if a.packageDir != "" {
		dir := a.packageDir
		s.Dirs.Package = &dir
	}
	if a.cfg.FindManifestRoot {
		s = s.ResolveManifestRoots(a.cfg.Manifest)
	}
	if a.cfg.PackageManager != "" {
		s.Manager = hostenv.ParsePackageManager(a.cfg.PackageManager)
	}
	return s
}

// policy selects what a project install runs. A trailing command is used
// alone. Otherwise the hooks table is consulted first and events it does not
// bind fall back to the "<pm> run <event>:<suffix>" script.
func (a *app) policy(command []string, s hostenv.Signals) hook.Policy {
	events := make([]hook.Event, 0, len(a.cfg.Events))
	for _, e := range a.cfg.Events {
		events = append(events, hook.Event(e))
	}

	if len(command) > 0 {
		return hook.Bind(events, command[0], command[1:]...)
	}

	script := a.scriptPolicy(s, events)
	if len(a.cfg.Hooks) == 0 {
		return script
	}

	table := make(hook.Table, len(a.cfg.Hooks))
	for event, h := range a.cfg.Hooks {
		table[hook.Event(event)] = hook.Action{Command: h.Command, Args: h.Args}
	}
	return hook.Chain{table, script}
}

// scriptPolicy runs "<pm> run <event><delimiter><project suffix>"
func (a *app) scriptPolicy(s hostenv.Signals, events []hook.Event) hook.ScriptPolicy {
	manager := s.Manager
	if manager == hostenv.Unknown {
		a.log.Warn().Msg("could not detect the package manager, falling back to npm")
		manager = hostenv.Npm
	}
	return hook.ScriptPolicy{
		Manager:   manager.String(),
		Delimiter: a.cfg.Delimiter,
		Suffix:    a.cfg.ProjectSuffix,
		Events:    events,
	}
}

// dryRunSpawner prints the command instead of running it
func dryRunSpawner(cmd *cobra.Command) hook.Spawner {
	return hook.SpawnFunc(func(dir, command string, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "would run: %s in %s\n", formatCommand(command, args), dir)
		return err
	})
}
