package sort

import "golang.org/x/exp/constraints"

// QuickSort 가운데 원소를 피벗으로 한 3-way 퀵소트 (제자리 정렬)
//
// 피벗보다 작은 구간, 같은 구간, 큰 구간으로 나눈 뒤 작은/큰 구간만 재귀한다.
func QuickSort[E constraints.Ordered](arr []E) []E {
	if len(arr) < 2 {
		return arr
	}
	quickSortHelper(arr, 0, len(arr)-1)
	return arr
}

func quickSortHelper[E constraints.Ordered](arr []E, low, high int) {
	for low < high {
		lt, gt := partition3Way(arr, low, high)

		// 짧은 쪽만 재귀하고 긴 쪽은 반복 (재귀 깊이 O(log n))
		if lt-low < high-gt {
			quickSortHelper(arr, low, lt-1)
			low = gt + 1
		} else {
			quickSortHelper(arr, gt+1, high)
			high = lt - 1
		}
	}
}

// partition3Way arr[low..lt-1] < pivot, arr[lt..gt] == pivot, arr[gt+1..high] > pivot
func partition3Way[E constraints.Ordered](arr []E, low, high int) (int, int) {
	// 가운데 원소를 피벗으로
	mid := low + (high-low)/2
	arr[low], arr[mid] = arr[mid], arr[low]
	pivot := arr[low]

	lt := low
	i := low + 1
	gt := high + 1

	for i < gt {
		if arr[i] < pivot {
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		} else if arr[i] > pivot {
			gt--
			arr[i], arr[gt] = arr[gt], arr[i]
		} else {
			i++
		}
	}

	return lt, gt - 1
}
