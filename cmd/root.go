// The root command for the CLI.
// This root 'composes' the subcommands and provides global flags like --debug.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	encodeCommand "github.com/redjax/encsweep/internal/commands/encodeCommand"
	encodingsCommand "github.com/redjax/encsweep/internal/commands/encodingsCommand"
	"github.com/redjax/encsweep/internal/version"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
	// Status and diagnostic messages; stdout carries only results
	log = newLogger()
)

// Cobra root command
var rootCmd = &cobra.Command{
	Use:   "encsweep",
	Short: "Percent-hex encode strings across text encodings.",
	Long: `Encode strings with many text encodings at once and print the bytes as
percent-escaped hex, or find out which encodings produce a given value.

Results are written to stdout; status messages go to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON, YAML, TOML or .env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	rootCmd.AddCommand(encodeCommand.NewEncodeCommand(log))
	rootCmd.AddCommand(encodingsCommand.NewEncodingsCommand())
	rootCmd.AddCommand(version.NewVersionCommand())
	rootCmd.AddCommand(version.NewPackageInfoCommand())
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}
