package report

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"sortbench/bench"
)

// WriteMarkdown 평균 표와 한계점 탐색 결과를 마크다운 문서 하나로 저장
func WriteMarkdown(path string, tables []bench.Table, series []bench.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	writer := bufio.NewWriterSize(file, 32*1024)
	if _, err := writer.WriteString(renderMarkdown(time.Now(), tables, series)); err != nil {
		file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func renderMarkdown(now time.Time, tables []bench.Table, series []bench.Series) string {
	var builder strings.Builder

	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", now.Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	for _, t := range tables {
		builder.WriteString(fmt.Sprintf("## %s\n\n", t.Category))

		builder.WriteString("| 크기 |")
		for _, alg := range t.Algorithms {
			builder.WriteString(fmt.Sprintf(" %s |", alg))
		}
		builder.WriteString("\n|------|")
		builder.WriteString(strings.Repeat("------|", len(t.Algorithms)))
		builder.WriteString("\n")

		for _, row := range t.Rows {
			builder.WriteString(fmt.Sprintf("| %s |", humanize.Comma(int64(row.Size))))
			for i, s := range row.Seconds {
				mark := ""
				if !row.Sorted[i] {
					mark = " ✗"
				}
				d := time.Duration(s * float64(time.Second))
				builder.WriteString(fmt.Sprintf(" %v%s |", d, mark))
			}
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}

	if len(series) > 0 {
		builder.WriteString("## 한계점 분석\n\n")
		builder.WriteString("| 알고리즘 | 측정 수 | 중단 이유 | 한계 크기 | 최대 메모리 |\n")
		builder.WriteString("|----------|---------|-----------|-----------|-------------|\n")
		for _, s := range series {
			var peak uint64
			for _, sample := range s.Samples {
				if sample.PeakBytes > peak {
					peak = sample.PeakBytes
				}
			}
			limit := "-"
			if s.BreakingSize > 0 {
				limit = humanize.Comma(int64(s.BreakingSize))
			}
			builder.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s |\n",
				s.Display, len(s.Samples), s.Stop, limit, humanize.Bytes(peak)))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
