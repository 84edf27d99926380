package sort

// GapSequence 길이 n 에 대한 셸 정렬 간격 수열을 만든다.
// 결과는 큰 값부터 1까지 엄격히 감소해야 한다.
type GapSequence func(n int) []int

// LinearGaps 9*4*k - 9*2*k + 1 (= 18k+1) 수열 중 n 이하인 값들
//
// 이름과 달리 Sedgewick 수열이 아니다. 기존 측정 결과와 비교할 수 있도록
// 이 수식을 그대로 유지한다.
func LinearGaps(n int) []int {
	var gaps []int
	for k := 0; ; k++ {
		gap := 9*4*k - 9*2*k + 1
		if gap > n {
			break
		}
		gaps = append(gaps, gap)
	}
	reverseInts(gaps)
	return gaps
}

// ExponentialGaps 9*4^k - 9*2^k + 1 수열 중 n 이하인 값들
func ExponentialGaps(n int) []int {
	var gaps []int
	pow2, pow4 := 1, 1
	for {
		gap := 9*pow4 - 9*pow2 + 1
		if gap > n {
			break
		}
		gaps = append(gaps, gap)
		pow2 *= 2
		pow4 *= 4
	}
	reverseInts(gaps)
	return gaps
}

// HalvingGaps n/2, n/4, ..., 1
func HalvingGaps(n int) []int {
	var gaps []int
	for gap := n / 2; gap > 0; gap /= 2 {
		gaps = append(gaps, gap)
	}
	return gaps
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
