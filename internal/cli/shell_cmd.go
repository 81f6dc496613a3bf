package cli

import (
	"github.com/jeffs/conf/internal/host"
	"github.com/spf13/cobra"
)

func (a *App) newShellCmd() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "대화형 세션을 시작한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.startSession(interactivity{
				flag:    interactive,
				flagSet: cmd.Flags().Changed("interactive"),
			})
			if err != nil {
				return err
			}
			h := &host.Host{
				State:      env.state,
				Dispatcher: env.dispatcher,
				Runner:     a.runner(),
				Fields:     env.fields,
				Logger:     env.logger,
				In:         a.in(),
				Out:        a.out(),
				Err:        a.errw(),
				Color:      a.isTerminal(),
			}
			code, err := h.Run(cmd.Context())
			if err != nil {
				return err
			}
			if code != 0 {
				return &ExitStatusError{Code: code}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&interactive, "interactive", false, "stdin이 터미널이 아니어도 alias를 등록")
	return cmd
}
