package dataset

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Category 데이터 분포 종류
type Category string

const (
	Uniform        Category = "uniform"
	Gaussian       Category = "gaussian"
	Ordered        Category = "ordered"
	ReverseOrdered Category = "reverse_ordered"
	RepeatedValues Category = "repeated_values"
	SameValue      Category = "same_value"
	// AscDesc 오름차순 부분 배열 뒤에 내림차순 부분 배열
	AscDesc Category = "asc_desc"
)

// Categories 생성 가능한 모든 분포
func Categories() []Category {
	return []Category{Uniform, Gaussian, Ordered, ReverseOrdered, RepeatedValues, SameValue, AscDesc}
}

// ParseCategory 이름으로 분포를 찾는다
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", errors.Newf("unknown category %q", name)
}

const valueRange = 1000000

// Generate 분포 c 를 따르는 길이 n 의 수열을 만든다
func Generate(c Category, n int, r *rand.Rand) ([]float64, error) {
	if n < 0 {
		return nil, errors.Newf("negative size %d", n)
	}
	data := make([]float64, n)
	switch c {
	case Uniform:
		for i := range data {
			data[i] = r.Float64() * valueRange
		}
	case Gaussian:
		for i := range data {
			data[i] = r.NormFloat64()*valueRange/10 + valueRange/2
		}
	case Ordered:
		for i := range data {
			data[i] = float64(i)
		}
	case ReverseOrdered:
		for i := range data {
			data[i] = float64(n - i)
		}
	case RepeatedValues:
		// 적은 수의 서로 다른 값이 반복된다
		distinct := n/100 + 1
		for i := range data {
			data[i] = float64(r.Intn(distinct))
		}
	case SameValue:
		v := float64(r.Intn(valueRange))
		for i := range data {
			data[i] = v
		}
	case AscDesc:
		half := n / 2
		for i := 0; i < half; i++ {
			data[i] = float64(i)
		}
		for i := half; i < n; i++ {
			data[i] = float64(n - i)
		}
	default:
		return nil, errors.Newf("unknown category %q", c)
	}
	return data, nil
}

// FileName <category>-input-<size>.txt
func FileName(c Category, n int) string {
	return fmt.Sprintf("%s-input-%d.txt", c, n)
}

// GenerateTree root/<category>/<category>-input-<size>.txt 파일들을 만들고 인덱스 항목을 반환한다
func GenerateTree(root string, categories []Category, sizes []int, seed int64) ([]Entry, error) {
	r := rand.New(rand.NewSource(seed))

	var entries []Entry
	for _, c := range categories {
		dir := filepath.Join(root, string(c))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create %s", dir)
		}
		for _, n := range sizes {
			data, err := Generate(c, n, r)
			if err != nil {
				return nil, err
			}
			path := filepath.Join(dir, FileName(c, n))
			if err := WriteFile(path, data); err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Path: path, Size: n, Category: string(c)})
		}
	}
	return entries, nil
}
