package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"sortbench/dataset"
)

func TestRunnerSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, dataset.WriteFile(good, []float64{5, 3, 1, 4, 2}))
	require.NoError(t, os.WriteFile(bad, []byte("1 2 three"), 0o644))

	algs, err := Resolve([]string{"cluster_shell", "merge"}, Options{})
	require.NoError(t, err)

	core, logs := observer.New(zap.WarnLevel)
	r := &Runner{Algorithms: algs, Trials: 2, Logger: zap.New(core)}

	rows, err := r.Run([]dataset.Entry{
		{Path: filepath.Join(dir, "missing.txt"), Size: 5, Category: "uniform"},
		{Path: bad, Size: 3, Category: "uniform"},
		{Path: good, Size: 0, Category: "uniform"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 5, rows[0].Size)
	require.Len(t, rows[0].Results, 2)
	for _, m := range rows[0].Results {
		require.True(t, m.Sorted)
		require.Equal(t, "uniform", m.Category)
		require.Equal(t, good, m.Path)
	}
	require.Equal(t, 2, logs.Len())
	require.Len(t, Measurements(rows), 2)

	_, err = (&Runner{}).Run(nil)
	require.Error(t, err)
}

func TestAggregate(t *testing.T) {
	m := func(display string, seconds float64, sorted bool) Measurement {
		return Measurement{Display: display, Seconds: seconds, Sorted: sorted}
	}
	rows := []Row{
		{Category: "uniform", Size: 100, Results: []Measurement{m("A", 1, true), m("B", 4, true)}},
		{Category: "gaussian", Size: 10, Results: []Measurement{m("A", 2, true), m("B", 2, true)}},
		{Category: "uniform", Size: 10, Results: []Measurement{m("A", 0.5, true), m("B", 1, true)}},
		{Category: "uniform", Size: 100, Results: []Measurement{m("A", 3, true), m("B", 2, false)}},
	}

	tables := Aggregate(rows)
	require.Len(t, tables, 2)

	uniform := tables[0]
	require.Equal(t, "uniform", uniform.Category)
	require.Equal(t, []string{"A", "B"}, uniform.Algorithms)
	require.Len(t, uniform.Rows, 2)
	require.Equal(t, 10, uniform.Rows[0].Size)
	require.Equal(t, 100, uniform.Rows[1].Size)
	require.Equal(t, []float64{2, 3}, uniform.Rows[1].Seconds)
	require.Equal(t, []bool{true, false}, uniform.Rows[1].Sorted)

	require.Equal(t, "gaussian", tables[1].Category)
	require.Len(t, tables[1].Rows, 1)
}
