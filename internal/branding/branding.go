// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed, so the example repository and
// the URLs printed to the user are fixed at build time and cannot be
// overridden at runtime.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	DefaultProjectName string `yaml:"default_project_name"`
	ExampleRepoURL     string `yaml:"example_repo_url"`
	DocsURL            string `yaml:"docs_url"`
	LocalURL           string `yaml:"local_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "create-ceramic-app",
			DisplayName:        "ComposeDB Example App",
			Description:        "Create a sample app with Ceramic and ComposeDB",
			HomeDir:            ".create-ceramic-app",
			EnvPrefix:          "CREATE_CERAMIC_APP",
			DefaultProjectName: "ceramic-example-app",
			ExampleRepoURL:     "https://github.com/ceramicstudio/ComposeDbExampleApp.git",
			DocsURL:            "https://developers.ceramic.network/docs/composedb/set-up-your-environment",
			LocalURL:           "http://localhost:3000",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-ceramic-app").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { load(); return defaults.HomeDir }

// DefaultProjectName is used when the user accepts the name placeholder.
func DefaultProjectName() string { load(); return defaults.DefaultProjectName }

// ExampleRepoURL returns the git URL of the example application.
func ExampleRepoURL() string { load(); return defaults.ExampleRepoURL }

// DocsURL returns the environment setup documentation link.
func DocsURL() string { load(); return defaults.DocsURL }

// LocalURL returns the address the dev server listens on.
func LocalURL() string { load(); return defaults.LocalURL }

// EnvVar returns the env var backing a config key, e.g. EnvVar("npm_bin") is
// "CREATE_CERAMIC_APP_NPM_BIN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
