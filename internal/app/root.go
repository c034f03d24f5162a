// Package app contains the Cobra command tree for ctxforge.
package app

import (
	"fmt"
	"os"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/config"
	"github.com/blackwell-systems/ctxforge/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "ctxforge",
	Short: "Classify projects and scaffold AI assistant configuration",
	Long: `ctxforge inspects a local project, classifies its type, frameworks,
languages, and complexity, and generates the configuration files an AI
coding assistant needs to work well in it: a CLAUDE.md rules file and
INITIAL.md feature requests.

Run 'ctxforge' with no arguments to see the available subcommands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.DefaultLogger.Level = log.DebugLevel
		} else {
			log.DefaultLogger.Level = log.WarnLevel
		}
		if flagNoColor {
			output.SetNoColor(true)
		}
		output.AutoDetect()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("ctxforge", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Classify a project and score its AI readiness")
		fmt.Println("  init      Generate CLAUDE.md and assistant scaffolding")
		fmt.Println("  feature   Generate an INITIAL.md feature request")
		fmt.Println("  validate  Score the quality of an existing setup")
		fmt.Println("  history   Show past analyses")
		fmt.Println("  prefs     Manage stored preferences")
		fmt.Println("  backup    Push generated config to a GitHub repository")
		fmt.Println("  doctor    Check whether the ctxforge setup is healthy")
		return nil
	},
}

// loadConfig loads the configuration and applies its output preferences.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if !cfg.Output.Color {
		output.SetNoColor(true)
	}
	output.SetWidth(cfg.Output.Width)
	return cfg, nil
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/ctxforge/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
