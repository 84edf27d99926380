package bench

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"sortbench/sort"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		alg, err := Lookup(name, Options{Clusters: 4})
		require.NoError(t, err)
		require.Equal(t, name, alg.Name)
		require.NotEmpty(t, alg.Display)
		require.Equal(t, []float64{1, 2, 3, 4, 5}, alg.Sort([]float64{5, 3, 1, 4, 2}))
	}

	alg, err := Lookup(" Cluster-Shell ", Options{})
	require.NoError(t, err)
	require.Equal(t, "Cluster Sort (Shell)", alg.Display)

	alg, err = Lookup("grouped_insertion", Options{Gaps: sort.ExponentialGaps})
	require.NoError(t, err)
	require.Equal(t, "adaptive_shell", alg.Name)

	_, err = Lookup("bogo", Options{})
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))

	_, err = Resolve([]string{"merge", "bogo"}, Options{})
	require.Error(t, err)

	algs, err := Resolve([]string{"merge", "heap"}, Options{})
	require.NoError(t, err)
	require.Len(t, algs, 2)
}
