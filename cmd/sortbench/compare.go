package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/report"
)

func newCompareCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compare <averaged table>...",
		Short: "평균 표마다 알고리즘 쌍별 성능 차이(%)를 계산한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sheets []report.Sheet
			for _, path := range args {
				records, err := report.ReadTable(path)
				if err != nil {
					a.lg.Warn("표를 건너뜀", zap.String("path", path), zap.Error(err))
					continue
				}
				c, err := report.Compare(records, a.cfg.Report)
				if err != nil {
					a.lg.Warn("표를 건너뜀", zap.String("path", path), zap.Error(err))
					continue
				}

				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				name = strings.TrimPrefix(name, "averaged_result_sort_")
				sheets = append(sheets, c.Sheet(name))
				fmt.Fprintf(cmd.OutOrStdout(), "Processing dataset: %s\n", name)
			}
			if len(sheets) == 0 {
				return errors.New("비교할 표가 없습니다")
			}
			if err := report.WriteWorkbook(output, sheets); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "비교 결과가 %s 에 저장되었습니다.\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "analysis.xlsx", "결과 워크북 (.xlsx)")
	return cmd
}
