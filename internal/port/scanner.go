package port

import "gendoc/internal/domain"

type Scanner interface {
	Scan(lines []string) []domain.Record
}
