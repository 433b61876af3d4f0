package usecase

import (
	"sort"

	"gendoc/internal/domain"
)

// Order returns a copy of records stably sorted by symbolic name. Names
// compare byte-wise, with no case or locale folding.
func Order(records []domain.Record) []domain.Record {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SymbolicName < sorted[j].SymbolicName
	})
	return sorted
}
