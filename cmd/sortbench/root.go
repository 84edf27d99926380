package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/config"
	"sortbench/logutil"
)

// app 하위 명령이 공유하는 설정과 로거
type app struct {
	cfg config.Config
	lg  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), lg: zap.NewNop()}

	var (
		cfgPath  string
		logLevel string
		logFile  string
	)

	root := &cobra.Command{
		Use:          "sortbench",
		Short:        "정렬 알고리즘 벤치마크",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
			}
			if cmd.Flags().Changed("log-level") {
				a.cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-file") {
				a.cfg.Log.Filename = logFile
			}

			lg, err := logutil.New(a.cfg.Log)
			if err != nil {
				return err
			}
			a.lg = lg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.lg.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgPath, "config", "c", "", "TOML 설정 파일")
	flags.StringVar(&logLevel, "log-level", "info", "로그 레벨 (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "로그 파일 (롤링)")

	root.AddCommand(
		newRunCmd(a),
		newBreakingCmd(a),
		newGenerateCmd(a),
		newIndexCmd(a),
		newCompareCmd(a),
	)
	return root
}
