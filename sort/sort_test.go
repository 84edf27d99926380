package sort

import (
	"math/rand"
	stdsort "sort"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

type namedSort struct {
	name string
	fn   Func[float64]
}

func allSorts() []namedSort {
	return []namedSort{
		{"shell", ShellSort[float64]},
		{"adaptive_shell", AdaptiveShellSort[float64]},
		{"comb", CombSort[float64]},
		{"quick", QuickSort[float64]},
		{"merge", MergeSort[float64]},
		{"heap", HeapSort[float64]},
		{"cluster_shell", func(a []float64) []float64 { return ClusterShellSort(a, DefaultClusters) }},
		{"cluster_comb", func(a []float64) []float64 { return ClusterCombSort(a, DefaultClusters) }},
	}
}

func sortedCopy(in []float64) []float64 {
	out := append([]float64(nil), in...)
	stdsort.Float64s(out)
	return out
}

func randomInputs(r *rand.Rand) [][]float64 {
	inputs := [][]float64{nil, {}, {42}, {2, 1}, {1, 2}}
	for _, n := range []int{3, 17, 100, 1000} {
		uniform := make([]float64, n)
		repeated := make([]float64, n)
		gaussian := make([]float64, n)
		ints := make([]float64, n)
		for i := range uniform {
			uniform[i] = r.Float64() * 1000
			repeated[i] = float64(r.Intn(5))
			gaussian[i] = r.NormFloat64()*50 - 10
			ints[i] = float64(r.Intn(n))
		}
		ordered := sortedCopy(uniform)
		reversed := make([]float64, n)
		for i, v := range ordered {
			reversed[n-1-i] = v
		}
		inputs = append(inputs, uniform, repeated, gaussian, ints, ordered, reversed)
	}
	return inputs
}

func TestSortsProduceSortedPermutation(t *testing.T) {
	convey.Convey("모든 알고리즘은 입력의 정렬된 순열을 반환한다", t, func() {
		r := rand.New(rand.NewSource(7))
		for _, input := range randomInputs(r) {
			want := sortedCopy(input)
			for _, s := range allSorts() {
				got := s.fn(append([]float64(nil), input...))
				convey.So(IsSorted(got), convey.ShouldBeTrue)
				convey.So(got, convey.ShouldResemble, want)
			}
		}
	})
}

func TestSortIsIdempotent(t *testing.T) {
	convey.Convey("sort(sort(x)) == sort(x)", t, func() {
		r := rand.New(rand.NewSource(11))
		for _, input := range randomInputs(r) {
			for _, s := range allSorts() {
				once := append([]float64(nil), s.fn(append([]float64(nil), input...))...)
				twice := s.fn(append([]float64(nil), once...))
				convey.So(twice, convey.ShouldResemble, once)
			}
		}
	})
}

func TestEndToEndScenarios(t *testing.T) {
	convey.Convey("[5,3,1,4,2] 는 모든 알고리즘에서 [1,2,3,4,5]", t, func() {
		for _, s := range allSorts() {
			got := s.fn([]float64{5, 3, 1, 4, 2})
			convey.So(got, convey.ShouldResemble, []float64{1, 2, 3, 4, 5})
		}
	})

	convey.Convey("[1,1,1,1] 은 그대로 반환된다", t, func() {
		for _, s := range allSorts() {
			got := s.fn([]float64{1, 1, 1, 1})
			convey.So(got, convey.ShouldResemble, []float64{1, 1, 1, 1})
		}
		for k := 1; k <= 12; k++ {
			convey.So(Partition([]float64{1, 1, 1, 1}, k), convey.ShouldBeNil)
			convey.So(ClusterShellSort([]float64{1, 1, 1, 1}, k), convey.ShouldResemble, []float64{1, 1, 1, 1})
			convey.So(ClusterCombSort([]float64{1, 1, 1, 1}, k), convey.ShouldResemble, []float64{1, 1, 1, 1})
		}
	})
}

func TestMergeSortLeavesInputUntouched(t *testing.T) {
	convey.Convey("머지소트는 새 슬라이스를 반환하고 입력은 건드리지 않는다", t, func() {
		input := []float64{3, 1, 3, 2, 1, 3}
		got := MergeSort(input)
		convey.So(got, convey.ShouldResemble, []float64{1, 1, 2, 3, 3, 3})
		convey.So(input, convey.ShouldResemble, []float64{3, 1, 3, 2, 1, 3})
	})
}
