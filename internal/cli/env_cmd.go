package cli

import (
	"fmt"
	"io"

	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/session"
	"github.com/jeffs/conf/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newEnvCmd() *cobra.Command {
	var shellType string
	cmd := &cobra.Command{
		Use:   "env",
		Short: "저장된 환경 변수를 불러와 출력한다",
		Long: `저장된 환경 파일을 bootstrap과 같은 규칙으로 읽는다.
--shell을 주면 eval 가능한 export 문을, 아니면 값을 가린 목록을 출력한다.
상속받은 환경에 JSH_LOGIN_DONE이 있으면 아무것도 출력하지 않는다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shellType != "" && !shell.IsSupported(shellType) {
				return fmt.Errorf("cli.env: 지원하지 않는 셸: %s", shellType)
			}
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}

			st := session.NewState(a.environ())
			boot := &session.Bootstrap{Err: a.errw(), Logger: a.logger().With("session", st.ID), Home: a.home()}
			_ = boot.Run(st, cfg.EnvFile)

			if shellType != "" {
				fmt.Fprint(a.out(), shell.Exports(st, st.Changed(), shellType))
				return nil
			}
			printMasked(a.out(), st)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, fish)")
	return cmd
}

func printMasked(w io.Writer, st *session.State) {
	for _, k := range st.Changed() {
		v, _ := st.Get(k)
		fmt.Fprintf(w, "%s=%s\n", k, MaskValue(k, v.String()))
	}
}
