package sort

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// AdaptivePath 적응형 셸 정렬이 실제로 탄 경로
type AdaptivePath int

const (
	// PathTrivial 길이 2 미만
	PathTrivial AdaptivePath = iota
	// PathReversed 내림차순 입력을 뒤집기만 함
	PathReversed
	// PathFrequency 과반 값이 있어 빈도 기반으로 바로 배치함
	PathFrequency
	// PathGapInsertion 일반 간격 삽입정렬
	PathGapInsertion
)

func (p AdaptivePath) String() string {
	switch p {
	case PathTrivial:
		return "trivial"
	case PathReversed:
		return "reversed"
	case PathFrequency:
		return "frequency"
	case PathGapInsertion:
		return "gap_insertion"
	}
	return "unknown"
}

// AdaptiveStats 적응형 셸 정렬 한 번의 실행 통계
type AdaptiveStats struct {
	Path AdaptivePath
	// Comparisons 간격 삽입정렬에서 수행한 원소 비교 횟수
	Comparisons int
	// DuplicateRuns 정렬 후 인접한 같은 값 묶음의 개수 (정보용)
	DuplicateRuns int
}

// AdaptiveShellSort LinearGaps 를 쓰는 적응형 셸 정렬 (제자리 정렬)
func AdaptiveShellSort[E constraints.Ordered](arr []E) []E {
	out, _ := AdaptiveShellSortStats(arr, LinearGaps)
	return out
}

// AdaptiveShellSortStats 싼 사전 검사를 순서대로 시도하고, 모두 실패하면
// gaps 수열로 간격 삽입정렬을 수행한다.
//
//  1. 비증가 배열이면 선형 시간에 뒤집고 끝낸다.
//  2. 한 값의 빈도가 n/2 를 넘으면 서로 다른 값을 정렬해 개수만큼 채운다.
//  3. 그 외에는 gaps(n) 간격 삽입정렬.
func AdaptiveShellSortStats[E constraints.Ordered](arr []E, gaps GapSequence) ([]E, AdaptiveStats) {
	n := len(arr)
	if n < 2 {
		return arr, AdaptiveStats{Path: PathTrivial}
	}
	if gaps == nil {
		gaps = LinearGaps
	}

	if reverseIfDescending(arr) {
		return arr, AdaptiveStats{Path: PathReversed}
	}
	if placeByFrequency(arr) {
		return arr, AdaptiveStats{Path: PathFrequency}
	}

	stats := AdaptiveStats{Path: PathGapInsertion}
	for _, gap := range gaps(n) {
		stats.Comparisons += gapInsertion(arr, gap)
	}
	stats.DuplicateRuns = countDuplicateRuns(arr)
	return arr, stats
}

// reverseIfDescending arr 가 비증가 순서면 뒤집고 true
func reverseIfDescending[E constraints.Ordered](arr []E) bool {
	for i := 0; i+1 < len(arr); i++ {
		if arr[i] < arr[i+1] {
			return false
		}
	}
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
	return true
}

// placeByFrequency 최빈값 빈도가 n/2 를 넘으면 값별 개수대로 다시 채우고 true
func placeByFrequency[E constraints.Ordered](arr []E) bool {
	freq := make(map[E]int)
	maxCount := 0
	for _, v := range arr {
		freq[v]++
		if freq[v] > maxCount {
			maxCount = freq[v]
		}
	}
	if maxCount <= len(arr)/2 {
		return false
	}

	distinct := make([]E, 0, len(freq))
	for v := range freq {
		distinct = append(distinct, v)
	}
	slices.Sort(distinct)

	i := 0
	for _, v := range distinct {
		for c := freq[v]; c > 0; c-- {
			arr[i] = v
			i++
		}
	}
	return true
}

// countDuplicateRuns 길이 2 이상인 같은 값 묶음의 수
func countDuplicateRuns[E constraints.Ordered](arr []E) int {
	runs := 0
	for i := 0; i < len(arr)-1; {
		if arr[i] != arr[i+1] {
			i++
			continue
		}
		j := i + 1
		for j < len(arr) && arr[j] == arr[i] {
			j++
		}
		runs++
		i = j
	}
	return runs
}
