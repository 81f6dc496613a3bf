package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newAliasCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "alias <name> [args...]",
		Short: "alias 하나를 실행한다",
		Long: `alias 하나를 실행하고 그 종료 상태로 끝난다.
디렉토리를 바꾸는 alias(mc, f, c, cl, y)는 이 프로세스 안에서만 효과가 있다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.startSession(interactivity{flag: true, flagSet: true})
			if err != nil {
				return err
			}
			if list || len(args) == 0 {
				fmt.Fprintln(a.out(), strings.Join(env.dispatcher.Registry.Names(), "\n"))
				return nil
			}

			res, err := env.dispatcher.Invoke(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprint(a.out(), res.Stdout)
			if res.Stderr != "" {
				fmt.Fprintln(a.errw(), strings.TrimRight(res.Stderr, "\n"))
			}
			if res.ExitCode != 0 {
				return &ExitStatusError{Code: res.ExitCode}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "등록된 alias 이름을 출력")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
