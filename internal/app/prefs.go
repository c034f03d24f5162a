package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/config"
	"github.com/blackwell-systems/ctxforge/internal/output"
	"github.com/blackwell-systems/ctxforge/internal/store"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage stored preferences",
	Long: `Prefs reads and writes dotted-path preference keys stored in the
local database, for example 'user.github_username' or
'programming.coding_style'. Unset keys fall back to built-in defaults.`,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one preference value",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference value",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefsSet,
}

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all preferences, defaults included",
	RunE:  runPrefsList,
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd, prefsSetCmd, prefsListCmd)
	rootCmd.AddCommand(prefsCmd)
}

func openStore() (*store.DB, error) {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

func runPrefsGet(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	value, known, err := db.GetPreference(args[0])
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("unknown preference key: %s", args[0])
	}

	if flagJSON {
		return renderJSON(map[string]string{args[0]: value})
	}
	fmt.Println(value)
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SetPreference(args[0], args[1]); err != nil {
		return err
	}
	fmt.Println(output.StyleSuccess.Render("✓ " + args[0] + " set"))
	return nil
}

func runPrefsList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	keys, values, err := db.AllPreferences()
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(values)
	}

	fmt.Println(output.Section("Preferences"))
	tbl := output.NewTable("KEY", "VALUE")
	for _, key := range keys {
		tbl.AddRow(key, values[key])
	}
	fmt.Println(tbl.Render())
	return nil
}
