package encodingscommand

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	encodeservice "github.com/redjax/encsweep/internal/services/encodeService"
	"github.com/redjax/encsweep/internal/utils/terminal"
)

func NewEncodingsCommand() *cobra.Command {
	var (
		showAll bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "encodings",
		Short: "List the encodings available to encode.",
		Long: `List the encoding catalog with each entry's kind, IANA name and aliases.

Use --all to include registry entries that are kept out of the catalog
(binary-to-text codecs and rot_13). Only catalog entries, or their aliases,
are accepted by encode --encoders.

Examples:
  encsweep encodings
  encsweep encodings --all --format markdown
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := encodeservice.NewEncodeService(nil)

			// Rows are truncated at the terminal width
			width := 0
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				width = terminal.Width(f)
			}

			return renderEncodings(cmd.OutOrStdout(), svc, showAll, format, width)
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Include entries excluded from the catalog")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, csv, markdown")

	return cmd
}

func renderEncodings(out io.Writer, svc *encodeservice.EncodeService, showAll bool, format string, width int) error {
	t := table.NewWriter()
	if width > 0 {
		t.SetAllowedRowLength(width)
	}

	header := table.Row{"Name", "Kind", "IANA", "Aliases"}
	if showAll {
		header = append(header, "Excluded")
	}
	t.AppendHeader(header)

	catalog := svc.Catalog()
	for _, e := range svc.Registry().Entries() {
		excluded := !catalog.Contains(e.Name)
		if excluded && !showAll {
			continue
		}
		row := table.Row{e.Name, e.Codec.Kind().String(), e.IANAName(), strings.Join(e.Aliases, ", ")}
		if showAll {
			row = append(row, excluded)
		}
		t.AppendRow(row)
	}

	var rendered string
	switch strings.ToLower(format) {
	case "table":
		t.SetStyle(table.StyleLight)
		rendered = t.Render()
	case "csv":
		rendered = t.RenderCSV()
	case "markdown", "md":
		rendered = t.RenderMarkdown()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Fprintln(out, rendered)
	return nil
}
