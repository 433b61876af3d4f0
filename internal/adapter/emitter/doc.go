// Package emitter renders ordered records into the text of generated files.
//
// The listing formats are spliced verbatim into C array initializers, so the
// quoting and the ",\n" separators must not change.
package emitter

import (
	"strings"

	"gendoc/internal/domain"
)

// DocEmitter writes the plain-text documentation dump.
type DocEmitter struct{}

func NewDocEmitter() *DocEmitter {
	return &DocEmitter{}
}

// Emit writes "name:" on its own line followed by the documentation text and
// a blank separator line for every record.
func (e *DocEmitter) Emit(records []domain.Record) string {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(r.SymbolicName)
		sb.WriteString(":\n")
		sb.WriteString(r.Documentation)
		sb.WriteString("\n")
	}
	return sb.String()
}
