package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lisapod/lisapod-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lisapod-api",
	Short: "Lisapod API server",
	Long: `Lisapod API - a serialized podcast generation service

Users pick a topic and the service generates a short podcast series for it,
one episode at a time: a lineup of episodes, a narrated intro, and episode
scripts that build on everything generated before. Scripts are produced by a
remote language model and narrated through speech synthesis.

Features:
  • Topic-driven episode lineup generation
  • Strictly sequential episode progression per user
  • Background generation workers with job polling
  • Audio artifacts rendered to per-user storage`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help don't touch config, so they skip it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
