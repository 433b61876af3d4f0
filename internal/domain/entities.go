package domain

import "errors"

// Record is one marker block paired with the declaration that sealed it.
type Record struct {
	SymbolicName  string `json:"symbolic_name"`
	Documentation string `json:"documentation"`
	DeclaredToken string `json:"declared_token"`
}

// Category is a single pipeline run: one annotated input and its three outputs.
type Category struct {
	Name        string
	Input       string
	DocOutput   string
	NamesOutput string
	DefsOutput  string
}

// Outputs returns the category's output paths in write order.
func (c Category) Outputs() []string {
	return []string{c.DocOutput, c.NamesOutput, c.DefsOutput}
}

var (
	ErrInputUnreadable  = errors.New("input unreadable")
	ErrOutputUnwritable = errors.New("output not writable")
)
