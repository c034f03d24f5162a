package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/output"
	"github.com/blackwell-systems/ctxforge/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Score the quality of an existing setup",
	Long: `Validate checks the project's assistant configuration: CLAUDE.md
presence and content quality, the .claude/ directory, INITIAL.md, and a
README. Prints a pass/fail line per check and a 1-10 score.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	report := validate.Setup(path)

	if flagJSON {
		return renderJSON(report)
	}

	fmt.Println(output.Section("Setup Checks"))
	for _, check := range report.Checks {
		mark := output.StyleError.Render("✗")
		if check.Passed {
			mark = output.StyleSuccess.Render("✓")
		}
		line := fmt.Sprintf(" %s %-22s %.2g/%.2g", mark, check.Name, check.Points, check.Max)
		if check.Note != "" {
			line += "  " + output.StyleMuted.Render(check.Note)
		}
		fmt.Println(line)
	}

	fmt.Println(output.Section("Score"))
	fmt.Printf(" %s  grade %s\n", output.ScoreBar(report.Score, 10), output.StyleBold.Render(report.Grade))

	for _, w := range report.Warnings {
		fmt.Println(" " + output.StyleWarning.Render("! "+w))
	}
	for _, s := range report.Suggestions {
		fmt.Println(" " + output.StyleMuted.Render("→ "+s))
	}
	fmt.Println()
	return nil
}
