package bench

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// ErrInvalidStep 크기 증가 단위가 0 이하
var ErrInvalidStep = errors.New("step must be positive")

// StopReason 한계점 탐색이 끝난 이유
type StopReason int

const (
	// StopExhausted 데이터셋 끝까지 한계를 넘지 않음
	StopExhausted StopReason = iota
	// StopTimeLimit 시간 한계 초과
	StopTimeLimit
	// StopMemoryLimit 메모리 한계 초과
	StopMemoryLimit
	// StopMaxSize 최대 크기 도달
	StopMaxSize
)

func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopTimeLimit:
		return "time_limit"
	case StopMemoryLimit:
		return "memory_limit"
	case StopMaxSize:
		return "max_size"
	}
	return "unknown"
}

// Limits 한계점 탐색 파라미터
type Limits struct {
	// Step 접두사 크기 증가 단위 (step, 2*step, ...)
	Step int
	// MaxSize 0 보다 크면 이 크기를 넘는 접두사는 측정하지 않는다
	MaxSize int
	// TimeLimit 한 번의 정렬 시간 한계
	TimeLimit time.Duration
	// MemoryLimit 최대 힙 사용량 한계(바이트)
	MemoryLimit uint64
}

// Measurer 한 번의 시간/메모리 측정
type Measurer interface {
	Measure(alg Algorithm, data []float64) (Sample, error)
}

// MeasurerFunc 함수를 Measurer 로
type MeasurerFunc func(alg Algorithm, data []float64) (Sample, error)

func (f MeasurerFunc) Measure(alg Algorithm, data []float64) (Sample, error) {
	return f(alg, data)
}

// TraceMeasurer Trace 로 측정하는 기본 Measurer
var TraceMeasurer Measurer = MeasurerFunc(Trace)

// Series 한 알고리즘의 한계점 탐색 결과
type Series struct {
	Algorithm string
	Display   string
	Samples   []Sample
	Stop      StopReason
	// BreakingSize 한계를 처음 넘은 크기. 넘지 않았으면 0
	BreakingSize int
}

// Breaking 데이터 접두사를 키워가며 시간/메모리 한계를 넘는 크기를 찾는다
type Breaking struct {
	Limits   Limits
	Measurer Measurer
	Logger   *zap.Logger
}

// Run data 의 접두사를 step 단위로 키우며 측정하고, 한계를 처음 넘은
// 측정값까지 포함한 결과를 반환한다. 측정 에러가 나면 그때까지의 결과와
// 에러를 함께 반환한다.
func (b *Breaking) Run(alg Algorithm, data []float64) (Series, error) {
	series := Series{Algorithm: alg.Name, Display: alg.Display}
	if b.Limits.Step <= 0 {
		return series, errors.Wrapf(ErrInvalidStep, "step=%d", b.Limits.Step)
	}

	measurer := b.Measurer
	if measurer == nil {
		measurer = TraceMeasurer
	}
	lg := b.Logger
	if lg == nil {
		lg = zap.NewNop()
	}
	lg = lg.With(zap.String("algorithm", alg.Name))

	for size := b.Limits.Step; size <= len(data); size += b.Limits.Step {
		if b.Limits.MaxSize > 0 && size > b.Limits.MaxSize {
			series.Stop = StopMaxSize
			return series, nil
		}

		sample, err := measurer.Measure(alg, data[:size])
		if err != nil {
			return series, errors.Wrapf(err, "size=%d", size)
		}
		series.Samples = append(series.Samples, sample)

		lg.Info("데이터셋 처리",
			zap.Int("size", size),
			zap.Float64("time_us", sample.Micros),
			zap.String("memory", humanize.Bytes(sample.PeakBytes)),
			zap.Bool("sorted", sample.Sorted))

		if b.Limits.TimeLimit > 0 && sample.Duration > b.Limits.TimeLimit {
			series.Stop = StopTimeLimit
			series.BreakingSize = size
			lg.Info("시간 한계 초과로 중단", zap.Int("size", size))
			return series, nil
		}
		if b.Limits.MemoryLimit > 0 && sample.PeakBytes > b.Limits.MemoryLimit {
			series.Stop = StopMemoryLimit
			series.BreakingSize = size
			lg.Info("메모리 한계 초과로 중단", zap.Int("size", size))
			return series, nil
		}
	}

	series.Stop = StopExhausted
	return series, nil
}
