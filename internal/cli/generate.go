package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"gendoc/config"
	"gendoc/internal/adapter/analyzer"
	"gendoc/internal/adapter/fs"
	"gendoc/internal/domain"
	"gendoc/internal/port"
	"gendoc/internal/usecase"
)

var (
	generateOnly     []string
	generateProgress bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write documentation dumps and listings for every category",
	Long: `Scan each category's annotated input and rewrite its three outputs:
the documentation dump, the quoted name listing and the declaration listing.
All outputs are rewritten on every run.

Examples:
  gendoc generate
  gendoc generate --only primitives --progress
  gendoc generate -d /path/to/project`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&generateOnly, "only", nil, "only generate the named categories")
	cmd.Flags().BoolVar(&generateProgress, "progress", false, "show a progress bar")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := GetRootDir()

	categories, err := selectCategories(cfg.Domain(), generateOnly)
	if err != nil {
		return err
	}

	uc, err := newGenerateUseCase(cfg)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar

	progressCallback := func(written, total int, currentFile string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetVisibility(generateProgress),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Generating[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		bar.Describe(fmt.Sprintf("[cyan]Generating[reset] %s", filepath.Base(currentFile)))
		bar.Set(written)
	}

	result, err := uc.Generate(cmd.Context(), root, categories, progressCallback)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, c := range result.Categories {
		fmt.Fprintf(out, "%s: %d records from %d input(s)\n", c.Name, c.Records, len(c.Inputs))
		for _, path := range c.Outputs {
			fmt.Fprintf(out, "  wrote %s\n", relTo(root, path))
		}
	}
	return nil
}

// newGenerateUseCase wires the filesystem adapters and a marker scanner
// configured from cfg.
func newGenerateUseCase(cfg *config.Config) (*usecase.GenerateUseCase, error) {
	pattern, err := cfg.Pattern()
	if err != nil {
		return nil, err
	}

	newScanner := func(input string) port.Scanner {
		return analyzer.NewMarkerScanner(pattern, cfg.OpenMarker, cfg.CloseMarker,
			analyzer.WithRequireMarker(cfg.RequireMarker),
			analyzer.WithUnmarkedHook(func(line int, token string) {
				log.Warn("declaration without a preceding marker",
					"file", input, "line", line, "token", token, "skipped", cfg.RequireMarker)
			}),
		)
	}

	return usecase.NewGenerateUseCase(
		fs.NewResolver(),
		fs.LineReader{},
		fs.NewWriter(cfg.CreateDirs),
		newScanner,
		log.Default(),
	), nil
}

// selectCategories keeps the categories named in only, in config order.
func selectCategories(all []domain.Category, only []string) ([]domain.Category, error) {
	if len(only) == 0 {
		return all, nil
	}

	known := make(map[string]bool, len(all))
	for _, c := range all {
		known[c.Name] = true
	}
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		if !known[name] {
			return nil, fmt.Errorf("unknown category: %s", name)
		}
		wanted[name] = true
	}

	var selected []domain.Category
	for _, c := range all {
		if wanted[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
