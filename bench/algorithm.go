package bench

import (
	"strings"

	"github.com/cockroachdb/errors"

	"sortbench/sort"
)

// ErrUnknownAlgorithm 등록되지 않은 알고리즘 이름
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm 측정 대상 정렬 알고리즘
type Algorithm struct {
	// Name 설정 파일과 CLI 에서 쓰는 이름 (예: cluster_shell)
	Name string
	// Display 리포트 컬럼에 쓰는 이름 (예: Cluster Sort (Shell))
	Display string
	Sort    sort.Func[float64]
}

// Options 알고리즘 생성 파라미터
type Options struct {
	// Clusters 클러스터 정렬 버킷 수. 0 이하면 sort.DefaultClusters
	Clusters int
	// Gaps 적응형 셸 정렬 간격 수열. nil 이면 sort.LinearGaps
	Gaps sort.GapSequence
}

var algorithmNames = []string{
	"shell",
	"adaptive_shell",
	"comb",
	"quick",
	"merge",
	"heap",
	"cluster_shell",
	"cluster_comb",
}

// Names 등록된 알고리즘 이름 목록
func Names() []string {
	return append([]string(nil), algorithmNames...)
}

// Lookup 이름으로 알고리즘을 만든다. 대소문자와 '-' 는 구분하지 않는다.
func Lookup(name string, opts Options) (Algorithm, error) {
	clusters := opts.Clusters
	if clusters <= 0 {
		clusters = sort.DefaultClusters
	}
	gaps := opts.Gaps
	if gaps == nil {
		gaps = sort.LinearGaps
	}

	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "shell":
		return Algorithm{"shell", "Shell Sort", sort.ShellSort[float64]}, nil
	case "adaptive_shell", "grouped_insertion":
		return Algorithm{"adaptive_shell", "Grouped Insertion Sort", func(arr []float64) []float64 {
			out, _ := sort.AdaptiveShellSortStats(arr, gaps)
			return out
		}}, nil
	case "comb":
		return Algorithm{"comb", "Comb Sort", sort.CombSort[float64]}, nil
	case "quick":
		return Algorithm{"quick", "Quick Sort", sort.QuickSort[float64]}, nil
	case "merge":
		return Algorithm{"merge", "Merge Sort", sort.MergeSort[float64]}, nil
	case "heap":
		return Algorithm{"heap", "Heap Sort", sort.HeapSort[float64]}, nil
	case "cluster_shell":
		return Algorithm{"cluster_shell", "Cluster Sort (Shell)", func(arr []float64) []float64 {
			return sort.ClusterShellSort(arr, clusters)
		}}, nil
	case "cluster_comb":
		return Algorithm{"cluster_comb", "Cluster Sort (Comb)", func(arr []float64) []float64 {
			return sort.ClusterCombSort(arr, clusters)
		}}, nil
	}
	return Algorithm{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Resolve 여러 이름을 한 번에 Lookup
func Resolve(names []string, opts Options) ([]Algorithm, error) {
	algs := make([]Algorithm, 0, len(names))
	for _, name := range names {
		alg, err := Lookup(name, opts)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
