package emitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gendoc/internal/domain"
	"gendoc/internal/port"
)

var (
	_ port.Emitter = (*DocEmitter)(nil)
	_ port.Emitter = (*NameListingEmitter)(nil)
	_ port.Emitter = (*DefListingEmitter)(nil)
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{SymbolicName: "+", Documentation: "* Basic addition.\n", DeclaredToken: "add"},
		{SymbolicName: "mod", Documentation: "* Modulus.\n* Integers only.\n", DeclaredToken: "mod"},
	}
}

func TestDocEmitter(t *testing.T) {
	got := NewDocEmitter().Emit(sampleRecords())

	want := "+:\n* Basic addition.\n\nmod:\n* Modulus.\n* Integers only.\n\n"
	assert.Equal(t, want, got)
}

func TestDocEmitter_EmptyDocumentation(t *testing.T) {
	got := NewDocEmitter().Emit([]domain.Record{{SymbolicName: "nop", DeclaredToken: "nop"}})

	assert.Equal(t, "nop:\n\n", got)
}

func TestDocEmitter_NoRecords(t *testing.T) {
	assert.Equal(t, "", NewDocEmitter().Emit(nil))
}

func TestNameListingEmitter(t *testing.T) {
	got := NewNameListingEmitter().Emit(sampleRecords())

	assert.Equal(t, "\"+\",\n\"mod\"\n", got)
}

func TestNameListingEmitter_SingleRecord(t *testing.T) {
	got := NewNameListingEmitter().Emit([]domain.Record{{SymbolicName: "add", DeclaredToken: "prim_add"}})

	assert.Equal(t, "\"add\"\n", got)
}

func TestNameListingEmitter_SplitsBackToNames(t *testing.T) {
	records := []domain.Record{{SymbolicName: "alpha"}, {SymbolicName: "beta"}, {SymbolicName: "1+"}}

	got := NewNameListingEmitter().Emit(records)

	entries := strings.Split(strings.TrimSuffix(got, "\n"), ",\n")
	require.Len(t, entries, len(records))
	for i, e := range entries {
		assert.Equal(t, records[i].SymbolicName, strings.TrimSuffix(strings.TrimPrefix(e, `"`), `"`))
	}
}

func TestDefListingEmitter(t *testing.T) {
	got := NewDefListingEmitter().Emit(sampleRecords())

	assert.Equal(t, "add,\nmod\n", got)
}

func TestDefListingEmitter_Verbatim(t *testing.T) {
	got := NewDefListingEmitter().Emit([]domain.Record{{DeclaredToken: " weird(token "}})

	assert.Equal(t, " weird(token \n", got)
}

func TestListingEmitters_NoRecords(t *testing.T) {
	assert.Equal(t, "\n", NewNameListingEmitter().Emit(nil))
	assert.Equal(t, "\n", NewDefListingEmitter().Emit(nil))
}
