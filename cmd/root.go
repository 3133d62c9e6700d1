package cmd

import (
	"github.com/abhisek/hirabolta/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hirabolta",
	Short: "Kana flashcards in the terminal",
	Long:  "Hirabolta — learn Hiragana and Katakana row by row with multiple-choice flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides HIRABOLTA_DB env var)")
	flags.String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/hirabolta/config.yaml)")
	flags.String("learner", "", "Learner name; empty plays as guest (overrides HIRABOLTA_LEARNER)")
	flags.String("log", "", "Path to log file (default $XDG_STATE_HOME/hirabolta/hirabolta.log)")
	flags.Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then HIRABOLTA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
