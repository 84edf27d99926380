package report

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Comparison 알고리즘 쌍별 평균 시간 차이(%)
type Comparison struct {
	Algorithms []string
	Means      []float64
	// Percent[i][j] 알고리즘 i 가 j 보다 빠를 때 (mean[j]-mean[i])/mean[j]*100. 아니면 nil
	Percent [][]*float64
}

// Compare 평균 표(헤더 포함)의 시간 컬럼들로 비교표를 만든다.
// 숫자가 아닌 칸은 평균에서 제외한다.
func Compare(records [][]string, cols Columns) (Comparison, error) {
	var c Comparison
	if len(records) == 0 {
		return c, errors.New("empty table")
	}

	var idx []int
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		if strings.HasSuffix(name, cols.TimeSuffix) && name != cols.Size {
			c.Algorithms = append(c.Algorithms, strings.TrimSpace(strings.TrimSuffix(name, cols.TimeSuffix)))
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return c, errors.Newf("no %q columns", cols.TimeSuffix)
	}

	c.Means = make([]float64, len(idx))
	for k, col := range idx {
		sum, n := 0.0, 0
		for _, record := range records[1:] {
			if col >= len(record) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
			if err != nil {
				continue
			}
			sum += v
			n++
		}
		if n > 0 {
			c.Means[k] = sum / float64(n)
		}
	}

	c.Percent = make([][]*float64, len(idx))
	for i := range idx {
		c.Percent[i] = make([]*float64, len(idx))
		for j := range idx {
			if i == j || c.Means[j] == 0 || c.Means[i] >= c.Means[j] {
				continue
			}
			pct := (c.Means[j] - c.Means[i]) / c.Means[j] * 100
			c.Percent[i][j] = &pct
		}
	}
	return c, nil
}

// Sheet 비교표를 워크북 시트 형태로
func (c Comparison) Sheet(name string) Sheet {
	header := []string{"Algorithm"}
	for _, alg := range c.Algorithms {
		header = append(header, "vs "+alg+" (%)")
	}

	records := make([][]interface{}, 0, len(c.Algorithms))
	for i, alg := range c.Algorithms {
		record := []interface{}{alg}
		for j := range c.Algorithms {
			switch {
			case i == j:
				record = append(record, nil)
			case c.Percent[i][j] == nil:
				record = append(record, "")
			default:
				record = append(record, *c.Percent[i][j])
			}
		}
		records = append(records, record)
	}
	return Sheet{Name: name, Header: header, Records: records}
}

// WriteComparisonCSV 비교표를 CSV 로
func WriteComparisonCSV(path string, c Comparison) error {
	sheet := c.Sheet("")
	return writeCSV(path, sheet.Header, sheet.Records)
}
