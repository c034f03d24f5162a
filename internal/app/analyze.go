package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
	"github.com/blackwell-systems/ctxforge/internal/config"
	"github.com/blackwell-systems/ctxforge/internal/output"
	"github.com/blackwell-systems/ctxforge/internal/store"
)

var (
	analyzeFlagJSON   bool
	analyzeFlagNoSave bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Classify a project and score its AI readiness",
	Long: `Analyze walks the project tree once and reports what it finds:
languages by file count, detected frameworks with confidence, project
type, complexity, architecture pattern, and a 1-10 readiness score for
AI-assisted work. The result is stored in the local history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeFlagJSON, "json", false, "Output as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeFlagNoSave, "no-save", false, "Do not record the analysis in history")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	result, err := analyzer.Analyze(path, analyzerOptions()...)
	if err != nil {
		return fmt.Errorf("analyzing project: %w", err)
	}

	if !analyzeFlagNoSave {
		recordHistory(result)
	}

	if analyzeFlagJSON || flagJSON {
		return renderJSON(result)
	}
	renderAnalysis(result)
	return nil
}

// analyzerOptions maps the scan section of the config onto analyzer
// options. A broken config falls back to the built-in defaults.
func analyzerOptions() []analyzer.Option {
	cfg, err := loadConfig()
	if err != nil {
		return nil
	}
	var opts []analyzer.Option
	if len(cfg.Scan.IgnoreDirs) > 0 {
		opts = append(opts, analyzer.WithIgnoreDirs(cfg.Scan.IgnoreDirs...))
	}
	opts = append(opts, analyzer.WithContentScanLimit(cfg.Scan.ContentScanLimit))
	return opts
}

// recordHistory stores the analysis, best effort. A broken local
// database should not fail the analyze run.
func recordHistory(c *analyzer.Classification) {
	db, err := store.Open(config.DBPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, output.StyleWarning.Render("warning: could not open history database: "+err.Error()))
		return
	}
	defer db.Close()

	if _, err := db.RecordAnalysis(c); err != nil {
		fmt.Fprintln(os.Stderr, output.StyleWarning.Render("warning: could not record analysis: "+err.Error()))
	}
}

func renderJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderAnalysis(c *analyzer.Classification) {
	fmt.Println(output.Section("Project"))
	printField("Name", c.Name)
	printField("Path", c.Path)
	printField("Type", c.ProjectType)
	printField("Complexity", string(c.Complexity))
	printField("Architecture", c.ArchitecturePattern)
	printField("Files", strconv.Itoa(c.FileCount))

	if len(c.Languages) > 0 {
		printField("Languages", strings.Join(c.Languages, ", "))
	} else {
		printField("Languages", analyzer.Unknown)
	}

	fmt.Println(output.Section("Frameworks"))
	if c.Frameworks != nil && len(c.Frameworks.Signals) > 0 {
		tbl := output.NewTable("FRAMEWORK", "SCORE", "CONFIDENCE")
		for _, s := range c.Frameworks.Signals {
			tbl.AddRow(s.Name, strconv.Itoa(s.Score), output.ConfidenceBadge(string(s.Confidence)))
		}
		fmt.Println(tbl.Render())
	} else {
		fmt.Println(output.StyleMuted.Render(" none detected"))
	}

	fmt.Println(output.Section("Readiness"))
	fmt.Printf(" %s\n", output.ScoreBar(c.ReadinessScore, 10))

	for _, issue := range c.Issues {
		fmt.Println(" " + output.StyleError.Render("✗ "+issue))
	}
	for _, suggestion := range c.Suggestions {
		fmt.Println(" " + output.StyleWarning.Render("→ "+suggestion))
	}
	fmt.Println()
}

func printField(label, value string) {
	fmt.Printf(" %s%s\n", output.StyleLabel.Render(label), output.StyleBold.Render(value))
}
