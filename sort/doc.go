// Package sort 벤치마크 대상 정렬 알고리즘 모음.
//
// 모든 함수는 입력 슬라이스를 정렬한 결과를 반환한다. 제자리 정렬은 같은
// 슬라이스를 돌려주고, 머지소트처럼 새 슬라이스를 만드는 알고리즘은 새
// 슬라이스를 돌려준다. 안정 정렬은 머지소트만 보장한다.
package sort

import "golang.org/x/exp/constraints"

// Number 클러스터 정렬처럼 값의 범위를 계산해야 하는 알고리즘용 제약
type Number interface {
	constraints.Integer | constraints.Float
}

// Func 정렬 함수 시그니처
type Func[E constraints.Ordered] func([]E) []E

// IsSorted 인접한 모든 쌍이 arr[i] <= arr[i+1] 인지 확인
func IsSorted[E constraints.Ordered](arr []E) bool {
	for i := 0; i+1 < len(arr); i++ {
		if arr[i] > arr[i+1] {
			return false
		}
	}
	return true
}
