package bench

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"sortbench/sort"
)

// DefaultTrials 평균 측정의 기본 반복 횟수
const DefaultTrials = 10

// Measurement 여러 번 반복한 평균 측정 결과 (정책 a)
type Measurement struct {
	Algorithm string        `json:"algorithm"`
	Display   string        `json:"display"`
	Category  string        `json:"category,omitempty"`
	Path      string        `json:"path,omitempty"`
	DataSize  int           `json:"data_size"`
	Trials    int           `json:"trials"`
	Duration  time.Duration `json:"duration"`
	// Seconds 평균 시간(초), 소수점 12자리 반올림
	Seconds float64 `json:"seconds"`
	// Sorted 모든 반복에서 정렬 결과가 올바른지
	Sorted bool `json:"sorted"`
}

// Sample 한 번 실행하며 시간과 최대 메모리를 잰 결과 (정책 b)
type Sample struct {
	Algorithm string        `json:"algorithm"`
	DataSize  int           `json:"data_size"`
	Duration  time.Duration `json:"duration"`
	// Micros 실행 시간(µs), 소수점 6자리 반올림
	Micros    float64 `json:"micros"`
	PeakBytes uint64  `json:"peak_bytes"`
	Sorted    bool    `json:"sorted"`
}

// Average data 를 trials 번 복사해 정렬하고 평균 시간과 정렬 여부를 낸다.
// data 는 변경되지 않는다.
func Average(alg Algorithm, data []float64, trials int) Measurement {
	if trials <= 0 {
		trials = DefaultTrials
	}

	var total time.Duration
	sorted := true
	for i := 0; i < trials; i++ {
		copied := slices.Clone(data)

		start := time.Now()
		out := alg.Sort(copied)
		total += time.Since(start)

		sorted = sorted && len(out) == len(data) && sort.IsSorted(out)
	}

	mean := total / time.Duration(trials)
	return Measurement{
		Algorithm: alg.Name,
		Display:   alg.Display,
		DataSize:  len(data),
		Trials:    trials,
		Duration:  mean,
		Seconds:   roundTo(total.Seconds()/float64(trials), 12),
		Sorted:    sorted,
	}
}

// Trace data 복사본을 한 번 정렬하며 시간과 최대 힙 사용량을 잰다.
// 정렬 중 패닉이 나도 추적기는 멈추고 에러로 돌려준다.
func Trace(alg Algorithm, data []float64) (Sample, error) {
	s := Sample{Algorithm: alg.Name, DataSize: len(data)}

	copied := slices.Clone(data)
	out, elapsed, peak, err := traced(alg.Sort, copied)
	if err != nil {
		return s, errors.Wrapf(err, "%s n=%d", alg.Name, len(data))
	}

	s.Duration = elapsed
	s.Micros = roundTo(float64(elapsed.Nanoseconds())/1e3, 6)
	s.PeakBytes = peak
	s.Sorted = len(out) == len(data) && sort.IsSorted(out)
	return s, nil
}

func traced(fn sort.Func[float64], arr []float64) (out []float64, elapsed time.Duration, peak uint64, err error) {
	tr := StartTrace(DefaultSampleInterval)
	defer func() {
		peak = tr.Stop()
		if r := recover(); r != nil {
			err = errors.Newf("정렬 중 패닉: %v", r)
		}
	}()

	start := time.Now()
	out = fn(arr)
	elapsed = time.Since(start)
	return out, elapsed, 0, nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
