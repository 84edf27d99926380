package sort

import "golang.org/x/exp/constraints"

// HeapSort 최대 힙을 만든 뒤 루트를 끝으로 보내며 정렬 (제자리 정렬)
func HeapSort[E constraints.Ordered](arr []E) []E {
	n := len(arr)

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(arr, n, i)
	}

	for i := n - 1; i > 0; i-- {
		arr[0], arr[i] = arr[i], arr[0]
		siftDown(arr, i, 0)
	}

	return arr
}

// siftDown arr[:n] 힙에서 i번 노드를 자식들보다 크도록 내린다
func siftDown[E constraints.Ordered](arr []E, n, i int) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && arr[largest] < arr[left] {
			largest = left
		}
		if right < n && arr[largest] < arr[right] {
			largest = right
		}
		if largest == i {
			return
		}
		arr[i], arr[largest] = arr[largest], arr[i]
		i = largest
	}
}
