package dataset

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sortbench/sort"
)

func TestGenerateShapes(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 1000

	for _, c := range Categories() {
		data, err := Generate(c, n, r)
		require.NoError(t, err, c)
		require.Len(t, data, n, c)
	}

	ordered, _ := Generate(Ordered, n, r)
	require.True(t, sort.IsSorted(ordered))

	reversed, _ := Generate(ReverseOrdered, n, r)
	for i := 1; i < n; i++ {
		require.Greater(t, reversed[i-1], reversed[i])
	}

	same, _ := Generate(SameValue, n, r)
	for _, v := range same {
		require.Equal(t, same[0], v)
	}

	repeated, _ := Generate(RepeatedValues, n, r)
	distinct := map[float64]bool{}
	for _, v := range repeated {
		distinct[v] = true
	}
	require.LessOrEqual(t, len(distinct), n/100+1)

	ascDesc, _ := Generate(AscDesc, n, r)
	require.True(t, sort.IsSorted(ascDesc[:n/2]))
	require.False(t, sort.IsSorted(ascDesc))

	_, err := Generate("zigzag", 10, r)
	require.Error(t, err)
}

func TestGenerateIsReproducible(t *testing.T) {
	a, _ := Generate(Uniform, 100, rand.New(rand.NewSource(1)))
	b, _ := Generate(Uniform, 100, rand.New(rand.NewSource(1)))
	require.Equal(t, a, b)
}

func TestGenerateTreeAndScan(t *testing.T) {
	root := t.TempDir()
	entries, err := GenerateTree(root, []Category{Uniform, SameValue}, []int{10, 100}, 42)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for _, e := range entries {
		data, err := ReadFile(e.Path)
		require.NoError(t, err)
		require.Len(t, data, e.Size)
	}

	// 형식이 다른 파일 이름은 크기를 알 수 없음
	require.NoError(t, os.WriteFile(filepath.Join(root, "uniform", "extra.txt"), []byte("1 2 3"), 0o644))

	scanned, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, scanned, 5)

	sizes := map[string]int{}
	for _, e := range scanned {
		sizes[filepath.Base(e.Path)] = e.Size
		require.Contains(t, []string{"uniform", "same_value"}, e.Category)
	}
	require.Equal(t, 100, sizes["uniform-input-100.txt"])
	require.Equal(t, 10, sizes["same_value-input-10.txt"])
	require.Zero(t, sizes["extra.txt"])
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("reverse_ordered")
	require.NoError(t, err)
	require.Equal(t, ReverseOrdered, c)

	_, err = ParseCategory("sideways")
	require.Error(t, err)
}
