package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortbench/dataset"
)

func newIndexCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "index <root>",
		Short: "카테고리별 디렉터리를 훑어 인덱스 파일을 만든다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Run.IndexPath
			}
			entries, err := dataset.Scan(args[0])
			if err != nil {
				return err
			}
			if err := dataset.WriteIndex(output, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dataset summary saved to %s (%d files)\n", output, len(entries))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "", "인덱스 파일 (.csv/.xlsx)")
	return cmd
}
