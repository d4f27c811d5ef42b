package encodecommand

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redjax/encsweep/internal/config"
	encodeservice "github.com/redjax/encsweep/internal/services/encodeService"
	"github.com/redjax/encsweep/internal/utils/spinner"
)

// noMatch is printed to stdout when no encoding reproduces the lookup target.
const noMatch = "no match"

func NewEncodeCommand(log *logrus.Logger) *cobra.Command {
	var (
		showMethods bool
		noSpinner   bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Percent-hex encode strings under one or more text encodings.",
		Long: `Encode a string, or every line of one or more files, with the selected
encodings and print each unique result as percent-escaped hex bytes.

With --lookup, print the encodings whose output for the input equals the given
value instead. Lookup always tries every encoding in the catalog.

Options can also be set in the --config file or through ENCSWEEP_* environment
variables (ENCSWEEP_ALL_ENCODERS=true, ENCSWEEP_ENCODERS=utf_8,ascii).

Examples:
  encsweep encode -s "hi" -e utf_16,ascii
  encsweep encode -i words.txt -a
  encsweep encode -s "hi" -l "%68%69" -c
  encsweep encode --methods
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := encodeservice.NewEncodeService(log)

			if showMethods {
				fmt.Fprintf(cmd.OutOrStdout(), "Available encoders: [%s]\n", strings.Join(svc.Catalog().Names(), ", "))
				return nil
			}

			cfgFile, _ := cmd.Flags().GetString("config")
			k, err := config.LoadConfig(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			cfg, err := config.LoadEncodeConfig(k)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runEncode(cmd.OutOrStdout(), log, svc, cfg, !noSpinner && !log.IsLevelEnabled(logrus.DebugLevel))
		},
	}

	cmd.Flags().StringP("string", "s", "", "String to encode")
	cmd.Flags().StringSliceP("input-files", "i", nil, "One or more input files. Each line is encoded separately")
	cmd.Flags().StringSliceP("encoders", "e", nil, "Encodings to apply (see --methods)")
	cmd.Flags().BoolP("all-encoders", "a", false, "Encode with every encoding in the catalog")
	cmd.Flags().StringP("lookup", "l", "", "Report the encodings that produce this encoded value")
	cmd.Flags().BoolP("common-encodings-only", "c", false, "With --lookup, report only common encodings (utf, ascii)")
	cmd.Flags().BoolVar(&showMethods, "methods", false, "Show available encodings")
	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Disable the progress spinner")

	return cmd
}

func runEncode(out io.Writer, log *logrus.Logger, svc *encodeservice.EncodeService, cfg config.EncodeConfig, spin bool) error {
	var sources []encodeservice.Source
	switch {
	case cfg.String != "":
		log.Infof("Encoding (no leading/trailing quotes): '%s'", cfg.String)
		sources = []encodeservice.Source{encodeservice.NewLiteralSource(cfg.String)}
		spin = false
	default:
		log.Info("Encoding lines from files")
		// Every file is checked before any encoding work starts.
		fileSources, err := encodeservice.NewFileSources(cfg.InputFiles)
		if err != nil {
			return err
		}
		sources = fileSources
	}

	if cfg.LookupMode() {
		log.Infof("Looking up encoding for: '%s'", cfg.Lookup)
	}
	if cfg.CommonOnly && !cfg.LookupMode() {
		log.Warn("--common-encodings-only was specified without --lookup; it has no effect.")
	}

	encoders := cfg.Encoders
	if cfg.UseCatalog() {
		encoders = svc.Catalog().Names()
	} else if err := checkEncoders(svc, encoders); err != nil {
		return err
	}

	stop := func() {}
	if spin {
		release := holdLogOutput(log)
		stopSpinner := spinner.StartSpinner(os.Stderr, "Encoding...")
		stop = func() {
			stopSpinner()
			release()
		}
	}
	res, err := svc.Sweep(encodeservice.SweepRequest{
		Encodings: encoders,
		Sources:   sources,
		Target:    cfg.Lookup,
	})
	stop()
	if err != nil {
		return err
	}

	if cfg.LookupMode() {
		if err := printLookup(out, log, res.Matches, cfg.CommonOnly); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, strings.Join(res.Encoded, "\n"))
	}

	log.Info("Done!")
	return nil
}

func printLookup(out io.Writer, log logrus.FieldLogger, matches []string, commonOnly bool) error {
	classes, err := encodeservice.Classify(matches)
	if errors.Is(err, encodeservice.ErrNoMatch) {
		log.Info("No match identified")
		fmt.Fprintln(out, noMatch)
		return nil
	}
	if err != nil {
		return err
	}

	log.Info("Common Encodings:")
	fmt.Fprintln(out, strings.Join(classes.Common, ","))
	if !commonOnly {
		log.Info("All Encodings:")
		fmt.Fprintln(out, strings.Join(classes.All, ","))
	}
	return nil
}

// checkEncoders rejects names, or aliases, that do not resolve to a catalog
// entry. Excluded codecs such as base64_codec count as unknown.
func checkEncoders(svc *encodeservice.EncodeService, names []string) error {
	for _, name := range names {
		e, err := svc.Registry().Entry(name)
		if err != nil || !svc.Catalog().Contains(e.Name) {
			return fmt.Errorf("%w: invalid encoder %q (see --methods)", config.ErrConfigConflict, name)
		}
	}
	return nil
}

// holdLogOutput buffers log output until the returned func is called, which
// writes the buffered entries to the original output. Warnings logged while
// the spinner is drawing would otherwise land on the spinner line.
func holdLogOutput(log *logrus.Logger) func() {
	var buf bytes.Buffer
	prev := log.Out
	log.SetOutput(&buf)

	return func() {
		log.SetOutput(prev)
		_, _ = prev.Write(buf.Bytes())
	}
}
