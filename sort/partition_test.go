package sort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition3WayUsesMiddlePivot(t *testing.T) {
	arr := []int{9, 4, 7, 5, 1, 5, 8, 5, 2}
	lt, gt := partition3Way(arr, 0, len(arr)-1)

	// 가운데 원소 arr[4] = 1 이 피벗
	pivot := 1
	require.Equal(t, 0, lt)
	require.Equal(t, 0, gt)
	require.Equal(t, pivot, arr[lt])
	for _, v := range arr[gt+1:] {
		require.Greater(t, v, pivot)
	}

	arr = []int{3, 5, 5, 5, 5, 9, 0}
	lt, gt = partition3Way(arr, 0, len(arr)-1)
	for _, v := range arr[:lt] {
		require.Less(t, v, 5)
	}
	require.Equal(t, []int{5, 5, 5, 5}, arr[lt:gt+1])
	for _, v := range arr[gt+1:] {
		require.Greater(t, v, 5)
	}
}

func TestQuickSortLargeWithoutCutoff(t *testing.T) {
	arr := make([]int, 500)
	for i := range arr {
		arr[i] = (i * 37) % 41
	}
	require.True(t, IsSorted(QuickSort(arr)))
}

func TestMergeUnevenHalves(t *testing.T) {
	require.Equal(t, []int{1, 2, 2, 3, 4, 9}, merge([]int{2, 3, 9}, []int{1, 2, 4}))
	require.Equal(t, []int{1, 2}, merge(nil, []int{1, 2}))
	require.Equal(t, []int{1, 2}, merge([]int{1, 2}, nil))
	require.Empty(t, merge[int](nil, nil))
}
