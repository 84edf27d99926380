package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeDelimiters(t *testing.T) {
	data, err := Decode(strings.NewReader("1 2.5\t-3\n4,5, 6\r\n\n7e2,"))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5, -3, 4, 5, 6, 700}, data)

	data, err = Decode(strings.NewReader("   \n"))
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("1 2 abc 4"))
	require.True(t, errors.Is(err, ErrMalformed))
	require.Contains(t, err.Error(), "abc")

	_, err = Decode(strings.NewReader("NaN"))
	require.True(t, errors.Is(err, ErrMalformed))
}

func TestEncodeReadWriteFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []float64{1, 0.25, -7}))
	require.Equal(t, "1\n0.25\n-7\n", buf.String())

	path := filepath.Join(t.TempDir(), "data.txt")
	in := []float64{3.5, 1, 2, 1e-9}
	require.NoError(t, WriteFile(path, in))
	out, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, in, out)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
