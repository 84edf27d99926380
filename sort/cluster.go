package sort

// DefaultClusters 클러스터 정렬의 기본 버킷 수
const DefaultClusters = 10

// Partition arr 를 값 범위 기준으로 numClusters 개 버킷에 나눈다.
//
// 버킷 폭은 (max-min)/numClusters 이고 최댓값은 마지막 버킷에 들어간다.
// 빈 입력이나 모든 값이 같은 입력이면 nil 을 반환한다.
func Partition[E Number](arr []E, numClusters int) [][]E {
	if len(arr) == 0 {
		return nil
	}
	if numClusters < 1 {
		numClusters = 1
	}

	minValue, maxValue := arr[0], arr[0]
	for _, v := range arr[1:] {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	if minValue == maxValue {
		return nil
	}

	lo := float64(minValue)
	width := (float64(maxValue) - lo) / float64(numClusters)
	clusters := make([][]E, numClusters)
	for _, v := range arr {
		idx := int((float64(v) - lo) / width)
		if idx >= numClusters {
			idx = numClusters - 1
		} else if idx < 0 {
			idx = 0
		}
		clusters[idx] = append(clusters[idx], v)
	}
	return clusters
}

// ClusterSort 버킷별로 inner 정렬 후 버킷 순서대로 arr 에 다시 쓴다 (제자리 정렬)
func ClusterSort[E Number](arr []E, numClusters int, inner Func[E]) []E {
	clusters := Partition(arr, numClusters)
	if clusters == nil {
		return arr
	}

	index := 0
	for _, cluster := range clusters {
		if len(cluster) == 0 {
			continue
		}
		index += copy(arr[index:], inner(cluster))
	}
	return arr
}

// ClusterShellSort 버킷 내부를 ShellSort 로 정렬하는 클러스터 정렬
func ClusterShellSort[E Number](arr []E, numClusters int) []E {
	return ClusterSort(arr, numClusters, ShellSort[E])
}

// ClusterCombSort 버킷 내부를 CombSort 로 정렬하는 클러스터 정렬
func ClusterCombSort[E Number](arr []E, numClusters int) []E {
	return ClusterSort(arr, numClusters, CombSort[E])
}
