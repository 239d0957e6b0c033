package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/x4empire/internal/adapters/export"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var (
		saveFile string
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the analysis report to a file",
		Long: `Export writes the full analysis report in csv, json or text format.
With --output - the report goes to stdout.

Examples:
  x4empire export --format csv --output report.csv
  x4empire export --format json --output -
  x4empire export --format text --output report.txt --save ~/save/quicksave.xml.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, saveFile, format, output)
		},
	}

	cmd.Flags().StringVar(&saveFile, "save", "", "Save file to analyze (default: newest)")
	cmd.Flags().StringVar(&format, "format", "text", "Export format: csv, json or text")
	cmd.Flags().StringVar(&output, "output", "-", "Output file, or - for stdout")

	return cmd
}

func runExport(cmd *cobra.Command, saveFile, formatName, output string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	service, _, err := newService(false)
	if err != nil {
		return err
	}
	savePath, err := service.ResolveSavePath(saveFile)
	if err != nil {
		return err
	}

	result, err := service.Analyze(cmd.Context(), savePath)
	if err != nil {
		return err
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, format, result.Snapshot, result.Report); err != nil {
		return err
	}
	if output != "-" {
		fmt.Printf("Report exported to %s\n", output)
	}
	return nil
}
