package emitter

import (
	"strings"

	"gendoc/internal/domain"
)

const listingSeparator = ",\n"

// NameListingEmitter writes the quoted symbolic names for a string array.
type NameListingEmitter struct{}

func NewNameListingEmitter() *NameListingEmitter {
	return &NameListingEmitter{}
}

func (e *NameListingEmitter) Emit(records []domain.Record) string {
	return joinListing(records, func(r domain.Record) string {
		return `"` + r.SymbolicName + `"`
	})
}

// DefListingEmitter writes the declared tokens, unquoted, for a function
// pointer array.
type DefListingEmitter struct{}

func NewDefListingEmitter() *DefListingEmitter {
	return &DefListingEmitter{}
}

func (e *DefListingEmitter) Emit(records []domain.Record) string {
	return joinListing(records, func(r domain.Record) string {
		return r.DeclaredToken
	})
}

func joinListing(records []domain.Record, entry func(domain.Record) string) string {
	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteString(listingSeparator)
		}
		sb.WriteString(entry(r))
	}
	sb.WriteString("\n")
	return sb.String()
}
