package cli

import (
	"fmt"
	"io"

	"github.com/ceramicstudio/create-ceramic-app/internal/branding"
	"github.com/ceramicstudio/create-ceramic-app/internal/config"
	"github.com/ceramicstudio/create-ceramic-app/internal/manifest"
	"github.com/ceramicstudio/create-ceramic-app/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	checkTools    bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify git, node and npm versions")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this machine can scaffold and run the example app",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if !checkTools && checkManifest == "" {
			printSettings(out)
			runToolsCheck(cmd, out)
			return nil
		}

		if checkTools {
			runToolsCheck(cmd, out)
		}
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}
		return nil
	},
}

func printSettings(w io.Writer) {
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintf(w, "  config file:  %s\n", config.FilePath())
	fmt.Fprintf(w, "  example repo: %s\n", branding.ExampleRepoURL())
	fmt.Fprintf(w, "  git:          %s\n", config.GitBin())
	fmt.Fprintf(w, "  npm:          %s\n", config.NpmBin())
	fmt.Fprintln(w)
}

func runToolsCheck(cmd *cobra.Command, w io.Writer) {
	checker := toolchain.NewChecker(toolchain.DefaultTools(config.GitBin(), config.NpmBin()))
	toolchain.Report(w, checker.Check(cmd.Context()))
}

func runManifestCheck(w io.Writer, path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if result.Valid {
		fmt.Fprintf(w, "[ OK ] %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(w, "[FAIL] %s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}
	return fmt.Errorf("%s failed validation", path)
}
