package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gendoc/internal/domain"
	"gendoc/internal/port"
)

var (
	_ port.InputResolver = (*Resolver)(nil)
	_ port.LineReader    = LineReader{}
	_ port.FileWriter    = (*Writer)(nil)
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolve_PlainPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "primitives.h"), "")

	got, err := NewResolver().Resolve(root, "src/primitives.h")

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "primitives.h")}, got)
}

func TestResolve_GlobIsSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "inc", "b_prims.h"), "")
	writeFile(t, filepath.Join(root, "inc", "nested", "a_prims.h"), "")
	writeFile(t, filepath.Join(root, "inc", "other.h"), "")

	got, err := NewResolver().Resolve(root, "inc/**/*_prims.h")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "inc", "b_prims.h"),
		filepath.Join(root, "inc", "nested", "a_prims.h"),
	}, got)
}

func TestResolve_AbsolutePath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "forms.h")
	writeFile(t, path, "")

	got, err := NewResolver().Resolve("/somewhere/else", path)

	require.NoError(t, err)
	assert.Equal(t, []string{path}, got)
}

func TestResolve_MetacharactersInRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj[1]")
	writeFile(t, filepath.Join(root, "src", "primitives.h"), "")
	writeFile(t, filepath.Join(root, "inc", "a_prims.h"), "")

	got, err := NewResolver().Resolve(root, "src/primitives.h")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "primitives.h")}, got)

	got, err = NewResolver().Resolve(root, "inc/*_prims.h")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "inc", "a_prims.h")}, got)
}

func TestResolve_LiteralPathWithMetacharacters(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "prims[v2].h"), "")
	writeFile(t, filepath.Join(root, "src", "prims{old.h"), "")

	got, err := NewResolver().Resolve(root, "src/prims[v2].h")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "prims[v2].h")}, got)

	got, err = NewResolver().Resolve(root, "src/prims{old.h")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "prims{old.h")}, got)
}

func TestResolve_InvalidPattern(t *testing.T) {
	_, err := NewResolver().Resolve(t.TempDir(), "src/{unclosed.h")

	assert.ErrorIs(t, err, domain.ErrInputUnreadable)
}

func TestResolve_Missing(t *testing.T) {
	_, err := NewResolver().Resolve(t.TempDir(), "src/missing.h")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputUnreadable)
}

func TestResolve_DirectoryIsNotAnInput(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))

	_, err := NewResolver().Resolve(root, "src")

	assert.ErrorIs(t, err, domain.ErrInputUnreadable)
}

func TestReadLines_KeepsTerminators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.h")
	writeFile(t, path, "one\r\ntwo\n\nlast")

	got, err := ReadLines(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"one\r\n", "two\n", "\n", "last"}, got)
}

func TestReadLines_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.h")
	writeFile(t, path, "")

	got, err := ReadLines(path)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.h"))

	assert.ErrorIs(t, err, domain.ErrInputUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriter_CreatesDirsAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "gen", "names.h")
	w := NewWriter(true)

	require.NoError(t, w.WriteFile(path, "a much longer first version\n"))
	require.NoError(t, w.WriteFile(path, "\"add\"\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"add\"\n", string(data))
}

func TestWriter_MissingDirWithoutCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "names.h")

	err := NewWriter(false).WriteFile(path, "\n")

	assert.ErrorIs(t, err, domain.ErrOutputUnwritable)
}
