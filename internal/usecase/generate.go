package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"gendoc/internal/adapter/emitter"
	"gendoc/internal/domain"
	"gendoc/internal/port"
)

// ScannerFactory builds the scanner used for one input file.
type ScannerFactory func(input string) port.Scanner

// ProgressFunc is called after every output file is written.
type ProgressFunc func(written, total int, currentFile string)

// GenerateUseCase runs the scan, order and emit pipeline for each category.
type GenerateUseCase struct {
	resolver   port.InputResolver
	reader     port.LineReader
	writer     port.FileWriter
	newScanner ScannerFactory
	docs       port.Emitter
	names      port.Emitter
	defs       port.Emitter
	logger     *log.Logger
}

// NewGenerateUseCase creates a new generate use case.
func NewGenerateUseCase(
	resolver port.InputResolver,
	reader port.LineReader,
	writer port.FileWriter,
	newScanner ScannerFactory,
	logger *log.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		resolver:   resolver,
		reader:     reader,
		writer:     writer,
		newScanner: newScanner,
		docs:       emitter.NewDocEmitter(),
		names:      emitter.NewNameListingEmitter(),
		defs:       emitter.NewDefListingEmitter(),
		logger:     logger,
	}
}

// CategoryResult summarizes one category run.
type CategoryResult struct {
	Name    string
	Inputs  []string
	Records int
	Outputs []string
}

// GenerateResult contains the results of a generate run.
type GenerateResult struct {
	Categories   []CategoryResult
	FilesWritten int
}

// Generate runs every category in order. The first error aborts the run;
// files already written stay as they are.
func (u *GenerateUseCase) Generate(ctx context.Context, root string, categories []domain.Category, progress ProgressFunc) (*GenerateResult, error) {
	result := &GenerateResult{}
	total := 3 * len(categories)

	for _, cat := range categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		catResult, err := u.generateCategory(root, cat, func(path string) {
			result.FilesWritten++
			if progress != nil {
				progress(result.FilesWritten, total, path)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", cat.Name, err)
		}
		result.Categories = append(result.Categories, *catResult)
	}

	return result, nil
}

// Extract resolves input under root, scans every matching file in order and
// returns the ordered records together with the files that were read.
func (u *GenerateUseCase) Extract(root, input string) ([]domain.Record, []string, error) {
	paths, err := u.resolver.Resolve(root, input)
	if err != nil {
		return nil, nil, err
	}

	var records []domain.Record
	for _, path := range paths {
		lines, err := u.reader.ReadLines(path)
		if err != nil {
			return nil, nil, err
		}
		found := u.newScanner(path).Scan(lines)
		u.logger.Debug("scanned input", "path", path, "lines", len(lines), "records", len(found))
		records = append(records, found...)
	}

	return Order(records), paths, nil
}

// generateCategory runs the pipeline for a single category.
func (u *GenerateUseCase) generateCategory(root string, cat domain.Category, written func(string)) (*CategoryResult, error) {
	records, inputs, err := u.Extract(root, cat.Input)
	if err != nil {
		return nil, err
	}

	outputs := []struct {
		path    string
		emitter port.Emitter
	}{
		{cat.DocOutput, u.docs},
		{cat.NamesOutput, u.names},
		{cat.DefsOutput, u.defs},
	}

	result := &CategoryResult{
		Name:    cat.Name,
		Inputs:  inputs,
		Records: len(records),
	}
	for _, out := range outputs {
		path := resolvePath(root, out.path)
		if err := u.writer.WriteFile(path, out.emitter.Emit(records)); err != nil {
			return nil, err
		}
		u.logger.Debug("wrote output", "category", cat.Name, "path", path)
		result.Outputs = append(result.Outputs, path)
		written(path)
	}

	u.logger.Info("generated", "category", cat.Name, "records", len(records))
	return result, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
