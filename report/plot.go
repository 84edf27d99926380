package report

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"sortbench/bench"
)

// PlotTable 카테고리의 크기별 평균 시간을 로그 스케일 그래프로 저장 (.png/.svg/.pdf)
//
// 로그 축에 그릴 수 없는 0 이하 시간은 건너뛴다. 그릴 점이 없으면 파일을 만들지 않고 false.
func PlotTable(path string, t bench.Table) (bool, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Average Sorting Algorithm Comparison - %s", t.Category)
	p.X.Label.Text = "Array Size"
	p.Y.Label.Text = "Average Time (s)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for i, alg := range t.Algorithms {
		var pts plotter.XYs
		for _, row := range t.Rows {
			if row.Seconds[i] > 0 {
				pts = append(pts, plotter.XY{X: float64(row.Size), Y: row.Seconds[i]})
			}
		}
		if len(pts) > 0 {
			lines = append(lines, alg, pts)
		}
	}
	if len(lines) == 0 {
		return false, nil
	}

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return false, errors.Wrapf(err, "plot %s", t.Category)
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return false, errors.Wrapf(err, "save %s", path)
	}
	return true, nil
}
