package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan <file-or-pattern>",
	Short: "Show the records extracted from an annotated file",
	Long: `Run the marker scanner over a file (or doublestar pattern) and print the
records in output order. Nothing is written.

Examples:
  gendoc scan src/primitives.h
  gendoc scan 'include/**/*.h' --json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	uc, err := newGenerateUseCase(GetConfig())
	if err != nil {
		return err
	}

	records, inputs, err := uc.Extract(GetRootDir(), args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if scanJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintf(out, "No records found in %d file(s).\n", len(inputs))
		return nil
	}
	fmt.Fprintf(out, "Found %d records in %d file(s)\n\n", len(records), len(inputs))
	for i, r := range records {
		fmt.Fprintf(out, "--- [%d] %q -> %s ---\n", i+1, r.SymbolicName, r.DeclaredToken)
		if doc := strings.TrimRight(r.Documentation, "\r\n"); doc != "" {
			fmt.Fprintln(out, doc)
		}
		fmt.Fprintln(out)
	}
	return nil
}
