package sort

import "golang.org/x/exp/constraints"

// ShellSort n/2 부터 절반씩 줄어드는 간격의 셸 정렬 (제자리 정렬)
func ShellSort[E constraints.Ordered](arr []E) []E {
	for gap := len(arr) / 2; gap > 0; gap /= 2 {
		gapInsertion(arr, gap)
	}
	return arr
}

// gapInsertion gap 만큼 떨어진 원소끼리 삽입정렬. 이동(비교) 횟수를 반환한다.
func gapInsertion[E constraints.Ordered](arr []E, gap int) int {
	comparisons := 0
	for i := gap; i < len(arr); i++ {
		temp := arr[i]
		j := i
		for j >= gap {
			comparisons++
			if arr[j-gap] <= temp {
				break
			}
			arr[j] = arr[j-gap]
			j -= gap
		}
		arr[j] = temp
	}
	return comparisons
}

// CombSort 간격을 1.3배씩 줄여가는 버블 정렬 (제자리 정렬)
//
// 간격이 1이 된 패스에서 교환이 한 번도 없으면 종료한다.
func CombSort[E constraints.Ordered](arr []E) []E {
	const shrinkFactor = 1.3

	gap := len(arr)
	sorted := false
	for !sorted {
		gap = int(float64(gap) / shrinkFactor)
		if gap <= 1 {
			gap = 1
			sorted = true
		}
		for i := 0; i+gap < len(arr); i++ {
			if arr[i] > arr[i+gap] {
				arr[i], arr[i+gap] = arr[i+gap], arr[i]
				sorted = false
			}
		}
	}
	return arr
}
