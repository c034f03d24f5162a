package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ctxforge/internal/analyzer"
	"github.com/blackwell-systems/ctxforge/internal/backup"
	"github.com/blackwell-systems/ctxforge/internal/output"
)

var (
	backupFlagRepo    string
	backupFlagMessage string
)

var backupCmd = &cobra.Command{
	Use:   "backup [path]",
	Short: "Push generated config to a GitHub repository",
	Long: `Backup collects the project's assistant configuration (CLAUDE.md,
INITIAL.md, and everything under .claude/) and commits it to a GitHub
repository, creating the repository when it does not exist yet.

Requires a token in the github.token config key or the
CTXFORGE_GITHUB_TOKEN environment variable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupFlagRepo, "repo", "", "Repository name (default: derived from the project name)")
	backupCmd.Flags().StringVar(&backupFlagMessage, "message", "Update assistant configuration", "Commit message")

	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	root, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files, err := collectBackupFiles(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("nothing to back up: run 'ctxforge init' first")
	}

	ctx := cmd.Context()
	client, err := backup.NewClient(ctx, cfg.GitHub.Token)
	if err != nil {
		return err
	}
	if cfg.GitHub.Username != "" {
		client.SetLogin(cfg.GitHub.Username)
	}

	repoName := backupFlagRepo
	if repoName == "" {
		repoName = backup.SuggestRepositoryName(filepath.Base(root))
	}

	repo, err := client.EnsureRepository(ctx, repoName,
		"Assistant configuration for "+filepath.Base(root), cfg.GitHub.Private)
	if err != nil {
		return err
	}

	branch := repo.DefaultBranch
	if branch == "" {
		branch = "main"
	}

	sha, err := client.PushFiles(ctx, repo.Name, branch, backupFlagMessage, files)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(map[string]string{
			"repository": repo.FullName,
			"branch":     branch,
			"commit":     sha,
		})
	}

	fmt.Println(output.Section("Backup"))
	printField("Repository", repo.FullName)
	printField("Branch", branch)
	printField("Commit", sha)
	printField("Files", fmt.Sprintf("%d", len(files)))
	fmt.Println()
	fmt.Println(" " + output.StyleSuccess.Render("✓ configuration backed up"))
	return nil
}

// collectBackupFiles gathers the assistant config artifacts under root.
func collectBackupFiles(root string) ([]backup.File, error) {
	var files []backup.File

	for _, name := range []string{analyzer.RulesFileName, analyzer.FeatureFileName} {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		files = append(files, backup.File{Path: name, Content: string(data)})
	}

	claudeDir := filepath.Join(root, ".claude")
	err := filepath.WalkDir(claudeDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		files = append(files, backup.File{Path: filepath.ToSlash(rel), Content: string(data)})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return files, nil
}
