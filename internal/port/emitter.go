package port

import "gendoc/internal/domain"

// Emitter renders an ordered record set into the text of one generated file.
type Emitter interface {
	Emit(records []domain.Record) string
}
