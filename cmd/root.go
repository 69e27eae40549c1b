package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	plain    bool
)

var rootCmd = &cobra.Command{
	Use:   "ghbrowse",
	Short: "Browse public GitHub user profiles from the terminal",
	Long: `ghbrowse is an interactive terminal browser for public GitHub user
profiles: load a page of users, load more, filter locally, and fetch
followers/following/bio details on demand.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Browsing is the default action
		return runBrowse()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches upward for ghbrowse.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (error, warn, info, debug)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "plain text output instead of the TUI")
}
