// Package cmd implements the CLI for taskmd using Cobra.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "taskmd <input> [output]",
	Short: "taskmd — convert AtCoder problem pages into Markdown",
	Long: `taskmd converts an AtCoder problem statement (a saved HTML file or a task URL)
into Markdown, keeping section headings, variables as LaTeX math, lists and
sample code blocks.

Examples:
  taskmd problem.html
  taskmd problem.html output.md
  taskmd problem.html -l en
  taskmd https://atcoder.jp/contests/abc419/tasks/abc419_e -
  taskmd problem.html --format json`,
	Args:          cobra.RangeArgs(1, 2),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./taskmd.yaml or ~/.config/taskmd/taskmd.yaml)")
}

// initConfig reads taskmd.yaml and TASKMD_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("taskmd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "taskmd"))
		}
	}

	viper.SetEnvPrefix("TASKMD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
