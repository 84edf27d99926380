package sort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdaptiveReversedInputTakesLinearPath(t *testing.T) {
	n := 10000
	arr := make([]int, n)
	for i := range arr {
		arr[i] = n - i
	}

	got, stats := AdaptiveShellSortStats(arr, LinearGaps)
	require.Equal(t, PathReversed, stats.Path)
	require.Zero(t, stats.Comparisons)
	require.True(t, IsSorted(got))
	require.Equal(t, 1, got[0])
	require.Equal(t, n, got[n-1])
}

func TestAdaptiveFrequencyShortcut(t *testing.T) {
	got, stats := AdaptiveShellSortStats([]float64{5, 5, 5, 5, 1, 2}, nil)
	require.Equal(t, PathFrequency, stats.Path)
	require.Zero(t, stats.Comparisons)
	require.Equal(t, []float64{1, 2, 5, 5, 5, 5}, got)

	// 정확히 절반이면 지름길을 타지 않는다
	_, stats = AdaptiveShellSortStats([]float64{5, 5, 5, 1, 2, 3}, nil)
	require.Equal(t, PathGapInsertion, stats.Path)
}

func TestAdaptiveGapInsertion(t *testing.T) {
	got, stats := AdaptiveShellSortStats([]int{4, 9, 1, 1, 7, 3, 3, 8, 2, 6}, ExponentialGaps)
	require.Equal(t, PathGapInsertion, stats.Path)
	require.Positive(t, stats.Comparisons)
	require.Equal(t, 2, stats.DuplicateRuns)
	require.Equal(t, []int{1, 1, 2, 3, 3, 4, 6, 7, 8, 9}, got)

	_, stats = AdaptiveShellSortStats([]int{1}, nil)
	require.Equal(t, PathTrivial, stats.Path)
	require.Equal(t, "trivial", stats.Path.String())
}

func TestGapSequences(t *testing.T) {
	require.Equal(t, []int{55, 37, 19, 1}, LinearGaps(60))
	require.Equal(t, []int{1}, LinearGaps(1))
	require.Empty(t, LinearGaps(0))
	require.Equal(t, []int{505, 109, 19, 1}, ExponentialGaps(600))
	require.Equal(t, []int{5, 2, 1}, HalvingGaps(10))

	for _, seq := range []GapSequence{LinearGaps, ExponentialGaps, HalvingGaps} {
		gaps := seq(100000)
		require.Equal(t, 1, gaps[len(gaps)-1])
		for i := 1; i < len(gaps); i++ {
			require.Greater(t, gaps[i-1], gaps[i])
		}
	}
}

func TestPartitionCoversInput(t *testing.T) {
	input := []float64{0.5, 9.9, 3.2, 10, 0, 7.7, 3.2, 5}
	want := sortedCopy(input)

	for k := 1; k <= 12; k++ {
		clusters := Partition(input, k)
		require.Len(t, clusters, k)

		var concat []float64
		total := 0
		for _, c := range clusters {
			total += len(c)
			concat = append(concat, ShellSort(append([]float64(nil), c...))...)
		}
		require.Equal(t, len(input), total)
		require.Equal(t, want, concat)
	}

	require.Nil(t, Partition([]float64{}, 10))
	// 최댓값은 마지막 버킷
	clusters := Partition([]int{0, 10}, 5)
	require.Equal(t, []int{10}, clusters[4])
}

func TestClusterSortIntegers(t *testing.T) {
	got := ClusterSort([]int{9, -3, 4, 4, 0, 12, -7}, 3, MergeSort[int])
	require.Equal(t, []int{-7, -3, 0, 4, 4, 9, 12}, got)
}
