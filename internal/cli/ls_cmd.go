package cli

import (
	"time"

	"github.com/jeffs/conf/internal/lister"
	"github.com/spf13/cobra"
)

func (a *App) newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [paths...]",
		Short: "디렉토리 내용을 표로 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := lister.List(args)
			if err != nil {
				return err
			}
			return lister.Render(a.out(), entries, time.Now())
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
