package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
	"github.com/blackwell-systems/ctxforge/internal/generator"
	"github.com/blackwell-systems/ctxforge/internal/output"
)

var initFlagForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Generate CLAUDE.md and assistant scaffolding",
	Long: `Init analyzes the project and writes a CLAUDE.md rules file tailored
to its type and framework, plus a .claude/ directory for assistant
settings. Existing files are left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlagForce, "force", false, "Overwrite an existing CLAUDE.md")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	result, err := analyzer.Analyze(path, analyzerOptions()...)
	if err != nil {
		return fmt.Errorf("analyzing project: %w", err)
	}

	rulesPath := filepath.Join(result.Path, analyzer.RulesFileName)
	if _, err := os.Stat(rulesPath); err == nil && !initFlagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", rulesPath)
	}

	rules, err := generator.GenerateRules(result)
	if err != nil {
		return fmt.Errorf("generating rules file: %w", err)
	}

	if err := os.WriteFile(rulesPath, []byte(rules.Content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rulesPath, err)
	}

	claudeDir := filepath.Join(result.Path, ".claude")
	if err := os.MkdirAll(filepath.Join(claudeDir, "examples"), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", claudeDir, err)
	}

	recordHistory(result)

	if flagJSON {
		return renderJSON(rules)
	}

	fmt.Println(output.Section("Generated"))
	printField("Rules file", rulesPath)
	printField("Template", rules.TemplateUsed)
	printField("Sections", fmt.Sprintf("%d", len(rules.Sections)))
	printField("Settings dir", claudeDir)
	fmt.Println()
	fmt.Println(" " + output.StyleSuccess.Render("✓ project initialized"))
	return nil
}
