package config

// GetDefaults returns the default configuration values as koanf keys
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"delimiter":          ":",
		"project_suffix":     "project",
		"package_suffix":     "package",
		"events":             []string{"preinstall", "install", "postinstall", "prepare"},
		"package_manager":    "",
		"find_manifest_root": true,
		"manifest":           "package.json",
		"log_level":          "warn",
		"no_color":           false,
	}
}

// GetDefaultConfigTemplate returns a commented config file
func GetDefaultConfigTemplate() string {
	return `# scriptcontext configuration (.scriptcontext.yml)

delimiter: ":"                # <event><delimiter><suffix>, e.g. postinstall:project
project_suffix: project       # script suffix when installing the project itself
package_suffix: package       # script suffix reported for dependency installs
events:                       # events the follow-up command is bound to
  - preinstall
  - install
  - postinstall
  - prepare
package_manager: ""           # npm | pnpm | yarn | bun (empty = detect)
find_manifest_root: true      # compare the nearest package.json directories
manifest: package.json
log_level: warn               # trace | debug | info | warn | error
no_color: false

# Explicit commands; when set, these replace "<pm> run <event>:project".
# hooks:
#   postinstall:
#     command: make
#     args: [build]
`
}
