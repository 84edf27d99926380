package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestIndexRoundTrip(t *testing.T) {
	entries := []Entry{
		{Path: "/data/uniform/uniform-input-10.txt", Size: 10, Category: "uniform"},
		{Path: "/data/ordered/odd.txt", Size: 0, Category: "ordered"},
	}

	for _, name := range []string{"index.csv", "index.xlsx"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, WriteIndex(path, entries))

		got, err := ReadIndex(path, nil)
		require.NoError(t, err, name)
		require.Equal(t, entries, got, name)
	}
}

func TestReadIndexSkipsRowsWithoutPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.csv")
	content := "Category,Size,Path\nuniform,10,/a.txt\nuniform,20,\ngaussian,Unknown,/b.txt\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadIndex(path, nil)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Path: "/a.txt", Size: 10, Category: "uniform"},
		{Path: "/b.txt", Size: 0, Category: "gaussian"},
	}, got)
}

func TestReadIndexMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.csv")
	require.NoError(t, os.WriteFile(path, []byte("Path,Size\n/a.txt,1\n"), 0o644))

	_, err := ReadIndex(path, nil)
	require.True(t, errors.Is(err, ErrMissingColumn))
}
