package bench

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"sortbench/dataset"
)

// Row 한 입력 파일에 대한 알고리즘별 평균 측정 결과
type Row struct {
	Category string
	Path     string
	Size     int
	Results  []Measurement
}

// Runner 인덱스의 각 데이터셋 파일을 읽어 알고리즘별 평균 시간을 잰다
type Runner struct {
	Algorithms []Algorithm
	Trials     int
	// Load 파일을 수열로 읽는다. nil 이면 dataset.ReadFile
	Load   func(path string) ([]float64, error)
	Logger *zap.Logger
}

// Run entries 를 순서대로 측정한다. 읽을 수 없는 파일은 경고 로그를 남기고 건너뛴다.
func (r *Runner) Run(entries []dataset.Entry) ([]Row, error) {
	if len(r.Algorithms) == 0 {
		return nil, errors.New("no algorithms to run")
	}
	load := r.Load
	if load == nil {
		load = dataset.ReadFile
	}
	lg := r.Logger
	if lg == nil {
		lg = zap.NewNop()
	}

	var rows []Row
	for _, entry := range entries {
		data, err := load(entry.Path)
		if err != nil {
			lg.Warn("데이터셋을 건너뜀", zap.String("path", entry.Path), zap.Error(err))
			continue
		}

		size := entry.Size
		if size <= 0 {
			size = len(data)
		}
		row := Row{Category: entry.Category, Path: entry.Path, Size: size}
		for _, alg := range r.Algorithms {
			m := Average(alg, data, r.Trials)
			m.Category = entry.Category
			m.Path = entry.Path
			row.Results = append(row.Results, m)
		}
		rows = append(rows, row)

		lg.Info("파일 처리 완료",
			zap.Int("processed", len(rows)),
			zap.String("category", entry.Category),
			zap.String("path", entry.Path),
			zap.Int("size", size))
	}
	return rows, nil
}

// Measurements 모든 행의 측정 결과를 평탄화
func Measurements(rows []Row) []Measurement {
	var out []Measurement
	for _, row := range rows {
		out = append(out, row.Results...)
	}
	return out
}
