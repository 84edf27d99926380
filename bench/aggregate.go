package bench

import (
	"golang.org/x/exp/slices"
)

// Table 한 카테고리의 크기별 평균 결과
type Table struct {
	Category string
	// Algorithms 컬럼 순서대로의 표시 이름
	Algorithms []string
	Rows       []TableRow
}

// TableRow 같은 크기 파일들의 평균 시간과 정렬 여부 (AND)
type TableRow struct {
	Size    int
	Seconds []float64
	Sorted  []bool
}

// Aggregate 행을 카테고리별로 묶고, 같은 크기는 시간 평균/정렬 여부 AND 로 합친다.
// 카테고리는 처음 등장한 순서, 행은 크기 오름차순이다.
func Aggregate(rows []Row) []Table {
	type acc struct {
		sum    []float64
		sorted []bool
		count  int
	}

	var order []string
	tables := make(map[string]*Table)
	groups := make(map[string]map[int]*acc)

	for _, row := range rows {
		t, ok := tables[row.Category]
		if !ok {
			t = &Table{Category: row.Category}
			for _, m := range row.Results {
				t.Algorithms = append(t.Algorithms, m.Display)
			}
			tables[row.Category] = t
			groups[row.Category] = make(map[int]*acc)
			order = append(order, row.Category)
		}
		if len(row.Results) != len(t.Algorithms) {
			continue
		}

		a, ok := groups[row.Category][row.Size]
		if !ok {
			a = &acc{sum: make([]float64, len(t.Algorithms)), sorted: make([]bool, len(t.Algorithms))}
			for i := range a.sorted {
				a.sorted[i] = true
			}
			groups[row.Category][row.Size] = a
		}
		for i, m := range row.Results {
			a.sum[i] += m.Seconds
			a.sorted[i] = a.sorted[i] && m.Sorted
		}
		a.count++
	}

	out := make([]Table, 0, len(order))
	for _, category := range order {
		t := tables[category]
		sizes := make([]int, 0, len(groups[category]))
		for size := range groups[category] {
			sizes = append(sizes, size)
		}
		slices.Sort(sizes)

		for _, size := range sizes {
			a := groups[category][size]
			tr := TableRow{Size: size, Seconds: make([]float64, len(a.sum)), Sorted: a.sorted}
			for i, s := range a.sum {
				tr.Seconds[i] = s / float64(a.count)
			}
			t.Rows = append(t.Rows, tr)
		}
		out = append(out, *t)
	}
	return out
}
