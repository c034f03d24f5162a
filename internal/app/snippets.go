package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/output"
	"github.com/blackwell-systems/ctxforge/internal/store"
)

var (
	snippetsFlagFramework string
	snippetsFlagLanguage  string
	snippetsFlagSource    string
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Manage best-practice snippets",
	Long: `Snippets stores short best-practice notes by topic, optionally scoped
to a language or framework. The feature command surfaces matching
snippets as tips.`,
}

var snippetsAddCmd = &cobra.Command{
	Use:   "add <topic> <title> <content>",
	Short: "Store a snippet",
	Args:  cobra.ExactArgs(3),
	RunE:  runSnippetsAdd,
}

var snippetsListCmd = &cobra.Command{
	Use:   "list <topic>",
	Short: "List snippets for a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetsList,
}

func init() {
	snippetsAddCmd.Flags().StringVar(&snippetsFlagFramework, "framework", "", "Scope the snippet to a framework")
	snippetsAddCmd.Flags().StringVar(&snippetsFlagLanguage, "language", "", "Scope the snippet to a language")
	snippetsAddCmd.Flags().StringVar(&snippetsFlagSource, "source", "", "Where the snippet came from")
	snippetsListCmd.Flags().StringVar(&snippetsFlagFramework, "framework", "", "Prefer snippets for this framework")

	snippetsCmd.AddCommand(snippetsAddCmd, snippetsListCmd)
	rootCmd.AddCommand(snippetsCmd)
}

func runSnippetsAdd(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.AddSnippet(&store.Snippet{
		Topic:     args[0],
		Title:     args[1],
		Content:   args[2],
		Framework: snippetsFlagFramework,
		Language:  snippetsFlagLanguage,
		Source:    snippetsFlagSource,
	})
	if err != nil {
		return err
	}

	fmt.Println(output.StyleSuccess.Render(fmt.Sprintf("✓ snippet %d stored", id)))
	return nil
}

func runSnippetsList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	snippets, err := db.SnippetsFor(args[0], snippetsFlagFramework)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(snippets)
	}

	if len(snippets) == 0 {
		fmt.Println(output.StyleMuted.Render("No snippets for topic " + args[0]))
		return nil
	}

	fmt.Println(output.Section("Snippets: " + args[0]))
	for _, s := range snippets {
		scope := ""
		if s.Framework != "" {
			scope = " [" + s.Framework + "]"
		}
		fmt.Println(" " + output.StyleBold.Render(s.Title) + output.StyleMuted.Render(scope))
		fmt.Println("   " + s.Content)
	}
	fmt.Println()
	return nil
}
