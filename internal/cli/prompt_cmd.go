package cli

import (
	"fmt"

	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/navigate"
	"github.com/jeffs/conf/internal/prompt"
	"github.com/jeffs/conf/internal/vcs"
	"github.com/spf13/cobra"
)

func (a *App) newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "프롬프트 필드를 계산한다",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "branch",
			Short: "현재 jj bookmark를 출력한다. 저장소가 아니면 아무것도 출력하지 않는다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := a.promptFields()
				if err != nil {
					return err
				}
				if v, ok := fields[prompt.FieldBranch](cmd.Context()); ok {
					fmt.Fprint(a.out(), v)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "line",
			Short: "전체 프롬프트 문자열을 출력한다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := a.promptFields()
				if err != nil {
					return err
				}
				fmt.Fprint(a.out(), prompt.Line(fields.Resolve(cmd.Context()), false))
				return nil
			},
		},
	)
	return cmd
}

// promptFields는 bootstrap 없이 프롬프트 필드만 만든다. 프롬프트마다 호출되므로 가볍게 유지한다.
func (a *App) promptFields() (prompt.Fields, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}
	branch := &prompt.BranchResolver{Source: vcs.NewAdapter(a.runner(), cfg.Bin.JJ)}
	return prompt.DefaultFields(branch, &navigate.Navigator{Home: a.home()}), nil
}
