package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	taskexport "github.com/thenoetrevino/internlog/internal/export"
)

// Result describes a written export file
type Result struct {
	Format taskexport.Format `json:"format"`
	Path   string            `json:"path"`
	Count  int               `json:"count"`
	Bytes  int               `json:"bytes"`
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the report as CSV or JSON",
		Long: `Write the full day-ordered report to a file.
The default file name is internship_report_<date>.<format> in the current directory.
Use --output - to write to stdout.`,
		Example: `  internlog export --format csv
  internlog export --format json --output report.json`,
		RunE: runExport,
	}

	cmd.Flags().String("format", string(taskexport.FormatCSV), "Export format: csv or json")
	cmd.Flags().StringP("output", "o", "", "Output file, or - for stdout (default internship_report_<date>.<format>)")
	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	formatName, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := taskexport.ParseFormat(formatName)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith("INITIALIZATION_ERROR", cli.ExitError, err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if _, err := cliInstance.Session(cmd); err != nil {
		return formatter.Fail(err)
	}

	exported, err := cliInstance.App.TaskService.Export(ctx, format)
	if err != nil {
		return formatter.Fail(err)
	}

	if output == "-" {
		_, err = formatter.Writer().Write(exported.Data)
		return err
	}

	path := output
	if path == "" {
		path = exported.FileName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return formatter.Fail(fmt.Errorf("failed to create %s: %w", dir, err))
		}
	}
	if err := os.WriteFile(path, exported.Data, 0o644); err != nil {
		return formatter.Fail(fmt.Errorf("failed to write export: %w", err))
	}

	slog.Info("report exported", "format", format, "path", path, "tasks", exported.Count)

	result := Result{Format: format, Path: path, Count: exported.Count, Bytes: len(exported.Data)}
	if formatter.Quiet {
		_, err = fmt.Fprintln(formatter.Writer(), path)
		return err
	}
	if formatter.JSON {
		return formatter.Success(result)
	}

	_, err = fmt.Fprintf(formatter.Writer(), "✓ %s report exported successfully: %s (%d tasks)\n",
		strings.ToUpper(string(format)), path, exported.Count)
	return err
}
