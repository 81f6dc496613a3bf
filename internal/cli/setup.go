package cli

import (
	"github.com/jeffs/conf/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "jsh 설정 파일과 셸 hook을 대화형으로 만든다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := a.FormRunner
			if form == nil {
				form = &setup.HuhFormRunner{}
			}
			r := &setup.Runner{
				CfgPath:    a.CfgPath,
				Runner:     a.runner(),
				FormRunner: form,
				Home:       a.home(),
				Out:        a.out(),
				Err:        a.errw(),
			}
			return r.Run(cmd.Context())
		},
	}
}
