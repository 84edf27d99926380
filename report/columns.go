// Package report 측정 결과를 CSV, XLSX, JSON, Markdown, 그래프로 남긴다.
//
// 컬럼 이름은 이후 분석 스크립트와의 약속이므로 Columns 로 바꿀 수 있다.
package report

import (
	"strconv"

	"sortbench/bench"
)

// Columns 결과 표의 컬럼 이름 규칙
type Columns struct {
	Size         string `toml:"size"`
	TimeSuffix   string `toml:"time_suffix"`
	SortedSuffix string `toml:"sorted_suffix"`

	BreakingSize   string `toml:"breaking_size"`
	BreakingTime   string `toml:"breaking_time"`
	BreakingMemory string `toml:"breaking_memory"`
	BreakingSorted string `toml:"breaking_sorted"`
}

// DefaultColumns 기존 분석 스크립트가 읽는 컬럼 이름
func DefaultColumns() Columns {
	return Columns{
		Size:           "Size",
		TimeSuffix:     " Time",
		SortedSuffix:   " Sorted",
		BreakingSize:   "Dataset Size",
		BreakingTime:   "Sort Time (µs)",
		BreakingMemory: "Memory Usage (bytes)",
		BreakingSorted: "Sorted",
	}
}

// TableHeader 평균 표의 헤더
func (c Columns) TableHeader(t bench.Table) []string {
	header := []string{c.Size}
	for _, alg := range t.Algorithms {
		header = append(header, alg+c.TimeSuffix, alg+c.SortedSuffix)
	}
	return header
}

// TableRecords 평균 표의 각 행을 값으로
func (c Columns) TableRecords(t bench.Table) [][]interface{} {
	records := make([][]interface{}, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := []interface{}{row.Size}
		for i := range row.Seconds {
			record = append(record, row.Seconds[i], row.Sorted[i])
		}
		records = append(records, record)
	}
	return records
}

// SeriesHeader 한계점 표의 헤더
func (c Columns) SeriesHeader() []string {
	return []string{c.BreakingSize, c.BreakingTime, c.BreakingMemory, c.BreakingSorted}
}

// SeriesRecords 한계점 표의 각 행을 값으로
func (c Columns) SeriesRecords(s bench.Series) [][]interface{} {
	records := make([][]interface{}, 0, len(s.Samples))
	for _, sample := range s.Samples {
		records = append(records, []interface{}{sample.DataSize, sample.Micros, sample.PeakBytes, sample.Sorted})
	}
	return records
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case nil:
		return ""
	}
	return ""
}
