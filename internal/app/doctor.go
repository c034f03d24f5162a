package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
	"github.com/blackwell-systems/ctxforge/internal/config"
	"github.com/blackwell-systems/ctxforge/internal/generator"
	"github.com/blackwell-systems/ctxforge/internal/output"
	"github.com/blackwell-systems/ctxforge/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the ctxforge setup is healthy",
	Long: `Run a series of health checks against your ctxforge configuration,
local database, and built-in catalogs. Prints a pass/fail line per check
and a summary of how many checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	var checks []doctorCheck

	checks = append(checks, checkConfig())
	checks = append(checks, checkDatabase())
	checks = append(checks, checkCatalog())
	checks = append(checks, checkTemplates())
	checks = append(checks, checkScanPaths()...)
	checks = append(checks, checkToken())

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		return renderJSON(doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		})
	}

	fmt.Println(output.Section("Health Checks"))
	for _, c := range checks {
		mark := output.StyleError.Render("✗")
		if c.Passed {
			mark = output.StyleSuccess.Render("✓")
		}
		fmt.Printf(" %s %-22s %s\n", mark, c.Name, output.StyleMuted.Render(c.Message))
	}
	fmt.Println()
	fmt.Printf(" %d/%d checks passed\n\n", passed, len(checks))
	return nil
}

func checkConfig() doctorCheck {
	if _, err := config.Load(flagConfig); err != nil {
		return doctorCheck{Name: "config", Passed: false, Message: err.Error()}
	}
	return doctorCheck{Name: "config", Passed: true, Message: config.ConfigDir()}
}

func checkDatabase() doctorCheck {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return doctorCheck{Name: "database", Passed: false, Message: err.Error()}
	}
	defer db.Close()
	return doctorCheck{Name: "database", Passed: true, Message: config.DBPath()}
}

func checkCatalog() doctorCheck {
	if err := analyzer.ValidateCatalog(); err != nil {
		return doctorCheck{Name: "framework catalog", Passed: false, Message: err.Error()}
	}
	return doctorCheck{Name: "framework catalog", Passed: true, Message: "all patterns compile"}
}

func checkTemplates() doctorCheck {
	probe := &analyzer.Classification{
		Name:             "probe",
		ProjectType:      "web",
		PrimaryFramework: "react",
		Complexity:       analyzer.ComplexityLow,
	}
	if _, err := generator.GenerateRules(probe); err != nil {
		return doctorCheck{Name: "templates", Passed: false, Message: err.Error()}
	}
	return doctorCheck{Name: "templates", Passed: true, Message: "rules templates render"}
}

func checkScanPaths() []doctorCheck {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil
	}
	var checks []doctorCheck
	for _, path := range cfg.ScanPaths {
		if _, err := os.Stat(path); err != nil {
			checks = append(checks, doctorCheck{Name: "scan path", Passed: false, Message: path + " does not exist"})
		} else {
			checks = append(checks, doctorCheck{Name: "scan path", Passed: true, Message: path})
		}
	}
	return checks
}

func checkToken() doctorCheck {
	cfg, err := config.Load(flagConfig)
	if err == nil && cfg.GitHub.Token != "" {
		return doctorCheck{Name: "github token", Passed: true, Message: "configured"}
	}
	return doctorCheck{Name: "github token", Passed: false, Message: "set github.token or CTXFORGE_GITHUB_TOKEN to enable backup"}
}
