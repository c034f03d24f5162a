package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
	"github.com/blackwell-systems/ctxforge/internal/generator"
	"github.com/blackwell-systems/ctxforge/internal/output"
)

var (
	featureFlagPath  string
	featureFlagForce bool
)

var featureCmd = &cobra.Command{
	Use:   "feature <description>",
	Short: "Generate an INITIAL.md feature request",
	Long: `Feature classifies the described work (crud, api, ui, auth, ...),
estimates its complexity and effort, and writes an INITIAL.md feature
request file into the project.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFeature,
}

func init() {
	featureCmd.Flags().StringVar(&featureFlagPath, "path", ".", "Project path")
	featureCmd.Flags().BoolVar(&featureFlagForce, "force", false, "Overwrite an existing INITIAL.md")

	rootCmd.AddCommand(featureCmd)
}

func runFeature(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	result, err := analyzer.Analyze(featureFlagPath, analyzerOptions()...)
	if err != nil {
		return fmt.Errorf("analyzing project: %w", err)
	}

	featurePath := filepath.Join(result.Path, analyzer.FeatureFileName)
	if _, err := os.Stat(featurePath); err == nil && !featureFlagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", featurePath)
	}

	feature, err := generator.GenerateFeature(result, description)
	if err != nil {
		return fmt.Errorf("generating feature file: %w", err)
	}

	if err := os.WriteFile(featurePath, []byte(feature.Content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", featurePath, err)
	}

	if flagJSON {
		return renderJSON(feature)
	}

	fmt.Println(output.Section("Feature Request"))
	printField("File", featurePath)
	printField("Type", feature.FeatureType)
	printField("Complexity", feature.Complexity)
	printField("Estimate", feature.EstimatedTime)
	printTips(feature.FeatureType, result.PrimaryFramework)
	fmt.Println()
	fmt.Println(" " + output.StyleSuccess.Render("✓ feature request written"))
	return nil
}

// printTips shows stored best-practice snippets matching the feature
// topic, best effort.
func printTips(topic, framework string) {
	db, err := openStore()
	if err != nil {
		return
	}
	defer db.Close()

	snippets, err := db.SnippetsFor(topic, framework)
	if err != nil || len(snippets) == 0 {
		return
	}

	fmt.Println(output.Section("Tips"))
	for _, s := range snippets {
		fmt.Println(" " + output.StyleBold.Render(s.Title))
		fmt.Println("   " + s.Content)
	}
}
