package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/dataset"
	"sortbench/report"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		index      string
		outputDir  string
		trials     int
		clusters   int
		algorithms []string
		noPlot     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "인덱스의 데이터셋마다 알고리즘별 평균 시간을 측정",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := &a.cfg.Run
			flags := cmd.Flags()
			if flags.Changed("index") {
				rc.IndexPath = index
			}
			if flags.Changed("out") {
				rc.OutputDir = outputDir
			}
			if flags.Changed("trials") {
				rc.Trials = trials
			}
			if flags.Changed("clusters") {
				rc.Clusters = clusters
			}
			if flags.Changed("algorithms") {
				rc.Algorithms = algorithms
			}
			if noPlot {
				rc.Plot = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&index, "index", "", "데이터셋 인덱스 (.csv/.xlsx)")
	flags.StringVarP(&outputDir, "out", "o", "", "결과 디렉터리")
	flags.IntVar(&trials, "trials", 0, "반복 횟수")
	flags.IntVar(&clusters, "clusters", 0, "클러스터 정렬 버킷 수")
	flags.StringSliceVar(&algorithms, "algorithms", nil, "알고리즘 목록")
	flags.BoolVar(&noPlot, "no-plot", false, "그래프를 만들지 않음")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	rc := a.cfg.Run
	out := cmd.OutOrStdout()

	algs, err := bench.Resolve(rc.Algorithms, rc.Options())
	if err != nil {
		return err
	}
	entries, err := dataset.ReadIndex(rc.IndexPath, a.lg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(rc.OutputDir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", rc.OutputDir)
	}

	fmt.Fprintf(out, "정렬 알고리즘 벤치마크 시작... (데이터셋 %d개, 반복 %d회)\n", len(entries), rc.Trials)

	runner := &bench.Runner{Algorithms: algs, Trials: rc.Trials, Logger: a.lg}
	rows, err := runner.Run(entries)
	if err != nil {
		return err
	}

	tables := bench.Aggregate(rows)
	for _, t := range tables {
		a.lg.Info("카테고리 결과 저장", zap.String("category", t.Category), zap.Int("sizes", len(t.Rows)))
		base := filepath.Join(rc.OutputDir, "averaged_result_sort_"+t.Category)

		for _, format := range rc.Formats {
			path := base + "." + format
			switch format {
			case "csv":
				err = report.WriteTableCSV(path, t, a.cfg.Report)
			case "xlsx":
				err = report.WriteTableWorkbook(path, t, a.cfg.Report)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", path)
		}

		if rc.Plot {
			path := filepath.Join(rc.OutputDir, "averaged_log_plot_sort_"+t.Category+".png")
			ok, err := report.PlotTable(path, t)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", path)
			}
		}
	}

	jsonPath := filepath.Join(rc.OutputDir, "benchmark_results.json")
	if err := report.WriteJSON(jsonPath, bench.Measurements(rows)); err != nil {
		return err
	}
	mdPath := filepath.Join(rc.OutputDir, "benchmark_results.md")
	if err := report.WriteMarkdown(mdPath, tables, nil); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s, %s 파일이 생성되었습니다.\n", jsonPath, mdPath)
	fmt.Fprintln(out, "벤치마크 완료!")
	return nil
}
