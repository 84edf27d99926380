package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/config"
	"sortbench/dataset"
	"sortbench/report"
)

func newBreakingCmd(a *app) *cobra.Command {
	var (
		input       string
		output      string
		step        int
		maxSize     int
		timeLimit   time.Duration
		memoryLimit config.Bytes
		algorithms  []string
	)

	cmd := &cobra.Command{
		Use:   "breaking",
		Short: "입력 크기를 늘려가며 시간/메모리 한계를 넘는 크기를 찾는다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := &a.cfg.Breaking
			flags := cmd.Flags()
			if flags.Changed("input") {
				bc.InputPath = input
			}
			if flags.Changed("out") {
				bc.Output = output
			}
			if flags.Changed("step") {
				bc.Step = step
			}
			if flags.Changed("max-size") {
				bc.MaxSize = maxSize
			}
			if flags.Changed("time-limit") {
				bc.TimeLimit.Duration = timeLimit
			}
			if flags.Changed("memory-limit") {
				bc.MemoryLimit = memoryLimit
			}
			if flags.Changed("algorithms") {
				bc.Algorithms = algorithms
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.breaking(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "숫자 데이터 파일 (공백/쉼표 구분)")
	flags.StringVarP(&output, "out", "o", "", "결과 워크북 (.xlsx)")
	flags.IntVar(&step, "step", 0, "크기 증가 단위")
	flags.IntVar(&maxSize, "max-size", 0, "최대 크기 (0 이면 제한 없음)")
	flags.DurationVar(&timeLimit, "time-limit", 0, "시간 한계")
	flags.Var(&memoryLimit, "memory-limit", "메모리 한계 (500000000, 500e6, \"500 MB\")")
	flags.StringSliceVar(&algorithms, "algorithms", nil, "알고리즘 목록")
	return cmd
}

func (a *app) breaking(cmd *cobra.Command) error {
	bc := a.cfg.Breaking
	out := cmd.OutOrStdout()

	algs, err := bench.Resolve(bc.Algorithms, a.cfg.Run.Options())
	if err != nil {
		return err
	}
	data, err := dataset.ReadFile(bc.InputPath)
	if err != nil {
		return err
	}
	a.lg.Info("데이터 로드", zap.String("path", bc.InputPath), zap.String("count", humanize.Comma(int64(len(data)))))

	driver := &bench.Breaking{Limits: bc.Limits(), Logger: a.lg}
	var all []bench.Series
	for _, alg := range algs {
		series, err := driver.Run(alg, data)
		if err != nil {
			return err
		}
		all = append(all, series)
		fmt.Fprintf(out, "%s: %d개 측정, 중단 이유 %s\n", alg.Display, len(series.Samples), series.Stop)
	}

	if err := report.WriteSeriesWorkbook(bc.Output, all, a.cfg.Report); err != nil {
		return err
	}
	base := strings.TrimSuffix(bc.Output, filepath.Ext(bc.Output))
	for _, s := range all {
		if err := report.WriteSeriesCSV(base+"_"+s.Algorithm+".csv", s, a.cfg.Report); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "한계점 분석 결과가 %s 에 저장되었습니다.\n", bc.Output)
	return nil
}
