package bench

import (
	"runtime"
	"runtime/metrics"
	"sync"
	"sync/atomic"
	"time"
)

const heapObjectsMetric = "/memory/classes/heap/objects:bytes"

// DefaultSampleInterval 힙 샘플링 주기
const DefaultSampleInterval = 100 * time.Microsecond

// Tracer 추적 구간 동안의 최대 힙 사용량 측정기
//
// StartTrace 로 시작하고 반드시 Stop 으로 끝낸다 (defer 권장).
// 측정 값은 시작 시점 대비 힙 객체 바이트의 최댓값이다.
type Tracer struct {
	baseline uint64
	peak     atomic.Uint64
	samples  []metrics.Sample

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	result   uint64
}

// StartTrace GC 로 힙을 정리한 뒤 기준값을 잡고 샘플링을 시작한다
func StartTrace(interval time.Duration) *Tracer {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}

	runtime.GC()
	runtime.GC()

	t := &Tracer{
		samples: []metrics.Sample{{Name: heapObjectsMetric}},
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	t.baseline = t.read()
	t.peak.Store(t.baseline)

	go t.loop(interval)
	return t
}

func (t *Tracer) loop(interval time.Duration) {
	defer close(t.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.observe()
		}
	}
}

// read 샘플러 고루틴 또는 고루틴 종료 후에만 호출된다
func (t *Tracer) read() uint64 {
	metrics.Read(t.samples)
	if t.samples[0].Value.Kind() != metrics.KindUint64 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return m.HeapAlloc
	}
	return t.samples[0].Value.Uint64()
}

func (t *Tracer) observe() {
	cur := t.read()
	for {
		old := t.peak.Load()
		if cur <= old || t.peak.CompareAndSwap(old, cur) {
			return
		}
	}
}

// Stop 샘플링을 멈추고 최대 사용량(바이트)을 반환한다. 여러 번 호출해도 된다.
func (t *Tracer) Stop() uint64 {
	t.stopOnce.Do(func() {
		close(t.stop)
		<-t.done
		t.observe()
		if peak := t.peak.Load(); peak > t.baseline {
			t.result = peak - t.baseline
		}
	})
	return t.result
}
