package cli

import (
	"fmt"
	"strings"

	"github.com/jeffs/conf/internal/jump"
	"github.com/spf13/cobra"
)

// NewJumpCmd는 jump 실행 파일의 루트 명령을 생성한다.
func NewJumpCmd() *cobra.Command {
	return NewApp().NewJumpCmd()
}

// NewJumpCmd는 a를 쓰는 jump 루트 명령을 생성한다.
// 해석한 대상을 줄바꿈 없이 stdout에 쓴다.
func (a *App) NewJumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jump <target>",
		Short:         "짧은 이름을 디렉토리나 URL로 바꾼다",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := environMap(a.environ())
			home := a.home()

			db, err := jump.Load(jump.Dirs(env[jump.PrefixesVar], home))
			if err != nil {
				return err
			}
			r := &jump.Resolver{
				DB: db,
				Expand: &jump.Expander{
					Home: home,
					Getenv: func(k string) (string, bool) {
						v, ok := env[k]
						return v, ok
					},
				},
			}
			target, err := r.Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(a.out(), target.Value)
			return nil
		},
	}
	cmd.SetOut(a.out())
	cmd.SetErr(a.errw())
	return cmd
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}
