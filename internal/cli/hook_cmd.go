package cli

import (
	"fmt"

	"github.com/jeffs/conf/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellType string
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸 rc 파일에 넣을 hook 스니펫을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet := shell.HookSnippet(shellType)
			if snippet == "" {
				return fmt.Errorf("cli.hook: 지원하지 않는 셸: %s", shellType)
			}
			fmt.Fprint(a.out(), snippet)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	return cmd
}
