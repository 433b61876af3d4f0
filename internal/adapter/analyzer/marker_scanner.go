package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"gendoc/internal/domain"
)

type scanState int

const (
	stateIdle scanState = iota
	stateAccumulating
)

// MarkerScanner pairs marker comment blocks with the declaration line that
// follows them.
type MarkerScanner struct {
	declaration   *regexp.Regexp
	openMarker    string
	closeMarker   string
	requireMarker bool
	onUnmarked    func(line int, token string)
}

// ScannerOption configures a MarkerScanner.
type ScannerOption func(*MarkerScanner)

// WithRequireMarker drops declarations that are not preceded by an opening
// marker since the previous declaration.
func WithRequireMarker(require bool) ScannerOption {
	return func(s *MarkerScanner) {
		s.requireMarker = require
	}
}

// WithUnmarkedHook is called for every declaration seen without a fresh
// opening marker, whether or not it is kept. line is 1-based.
func WithUnmarkedHook(fn func(line int, token string)) ScannerOption {
	return func(s *MarkerScanner) {
		s.onUnmarked = fn
	}
}

// NewMarkerScanner creates a scanner. declaration must have exactly one
// capture group; config validation enforces that before we get here.
func NewMarkerScanner(declaration *regexp.Regexp, openMarker, closeMarker string, opts ...ScannerOption) *MarkerScanner {
	s := &MarkerScanner{
		declaration: declaration,
		openMarker:  openMarker,
		closeMarker: closeMarker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks lines (terminators included) and returns records in encounter order.
func (s *MarkerScanner) Scan(lines []string) []domain.Record {
	var records []domain.Record

	state := stateIdle
	name := ""
	fresh := false
	var doc strings.Builder

	for i, line := range lines {
		if m := s.declaration.FindStringSubmatch(line); m != nil {
			token := ""
			if len(m) > 1 {
				token = m[1]
			}
			if !fresh && s.onUnmarked != nil {
				s.onUnmarked(i+1, token)
			}
			if fresh || !s.requireMarker {
				records = append(records, domain.Record{
					SymbolicName:  name,
					Documentation: doc.String(),
					DeclaredToken: token,
				})
			}
			doc.Reset()
			state = stateIdle
			fresh = false
			continue
		}

		trimmed := trimLeft(line)

		if state == stateAccumulating {
			if strings.HasPrefix(trimmed, s.closeMarker) {
				state = stateIdle
				continue
			}
			if !strings.HasPrefix(trimmed, s.openMarker) {
				doc.WriteString(trimmed)
				continue
			}
		}

		if strings.HasPrefix(trimmed, s.openMarker) {
			name = strings.TrimSpace(trimmed[len(s.openMarker):])
			doc.Reset()
			state = stateAccumulating
			fresh = true
		}
	}

	return records
}

// trimLeft strips leading whitespace but keeps the line terminator, so a blank
// line inside a block still contributes its newline.
func trimLeft(line string) string {
	body, term := splitTerminator(line)
	return strings.TrimLeftFunc(body, unicode.IsSpace) + term
}

func splitTerminator(line string) (string, string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}
