package cli

import (
	"context"
	"fmt"

	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context())
		},
	}
}

func (a *App) runDoctor(ctx context.Context) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Fprintf(a.out(), "  [✗] config: %v\n", err)
		fmt.Fprintln(a.out(), "      Fix: jsh setup 실행 또는 설정 파일 확인")
		// 기본값으로 나머지 진단은 계속한다.
		cfg = config.Default()
	}
	doctor.Print(a.out(), doctor.RunAll(ctx, a.runner(), cfg, a.CfgPath, a.home()))
	return nil
}
