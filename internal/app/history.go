package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/config"
	"github.com/blackwell-systems/ctxforge/internal/output"
	"github.com/blackwell-systems/ctxforge/internal/store"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past analyses",
	Long:  `History lists previously recorded project analyses, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "Maximum number of entries to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	records, err := db.ListAnalyses(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing analyses: %w", err)
	}

	if flagJSON {
		return renderJSON(records)
	}

	if len(records) == 0 {
		fmt.Println(output.StyleMuted.Render("No analyses recorded yet. Run 'ctxforge analyze' first."))
		return nil
	}

	fmt.Println(output.Section("Analysis History"))
	tbl := output.NewTable("WHEN", "NAME", "TYPE", "FRAMEWORK", "LANGUAGES", "SCORE")
	for _, r := range records {
		tbl.AddRow(
			r.AnalyzedAt.Local().Format("2006-01-02 15:04"),
			r.Name,
			r.ProjectType,
			r.Framework,
			strings.Join(r.Languages, ","),
			strconv.Itoa(r.Readiness),
		)
	}
	fmt.Println(tbl.Render())
	return nil
}
