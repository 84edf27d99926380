package sort

import "golang.org/x/exp/constraints"

// MergeSort 중간에서 나눠 재귀 정렬 후 병합. 새 슬라이스를 반환한다.
//
// 같은 값이면 왼쪽 절반의 원소를 먼저 가져오므로 안정 정렬이다.
func MergeSort[E constraints.Ordered](arr []E) []E {
	if len(arr) <= 1 {
		return arr
	}

	mid := len(arr) / 2
	left := MergeSort(arr[:mid])
	right := MergeSort(arr[mid:])

	return merge(left, right)
}

// merge 정렬된 두 슬라이스 병합
func merge[E constraints.Ordered](left, right []E) []E {
	out := make([]E, len(left)+len(right))
	for k := range out {
		if len(right) == 0 || (len(left) > 0 && left[0] <= right[0]) {
			out[k], left = left[0], left[1:]
		} else {
			out[k], right = right[0], right[1:]
		}
	}
	return out
}
