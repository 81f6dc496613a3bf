package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jeffs/conf/internal/cmdexec"
	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/setup"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// App은 CLI 명령들이 공유하는 의존성이다. 테스트에서는 각 필드를 주입한다.
type App struct {
	Runner     cmdexec.Runner
	CfgPath    string
	Home       string
	Environ    []string // nil이면 os.Environ()
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	FormRunner setup.FormRunner
	IsTerminal func() bool

	verbose bool
}

// NewApp은 실제 프로세스 stdio와 RealRunner로 App을 만든다.
func NewApp() *App {
	return &App{
		Runner:     cmdexec.NewRealRunner(),
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		FormRunner: &setup.HuhFormRunner{},
		IsTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// NewRootCmd는 jsh CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 a를 쓰는 jsh 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsh",
		Short:         "대화형 셸 세션 bootstrap과 alias",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(a.in())
	cmd.SetOut(a.out())
	cmd.SetErr(a.errw())

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath(a.home())
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newShellCmd(),
		a.newAliasCmd(),
		a.newLsCmd(),
		a.newPromptCmd(),
		a.newEnvCmd(),
		a.newHookCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}

// logger는 --verbose면 Debug, 아니면 Warn 수준의 stderr 로거다.
func (a *App) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.errw(), &slog.HandlerOptions{Level: level}))
}

func (a *App) home() string {
	if a.Home != "" {
		return a.Home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(a.errw(), "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}

func (a *App) environ() []string {
	if a.Environ != nil {
		return a.Environ
	}
	return os.Environ()
}

func (a *App) runner() cmdexec.Runner {
	if a.Runner == nil {
		return cmdexec.NewRealRunner()
	}
	return a.Runner
}

func (a *App) in() io.Reader {
	if a.In == nil {
		return os.Stdin
	}
	return a.In
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) errw() io.Writer {
	if a.Err == nil {
		return os.Stderr
	}
	return a.Err
}

func (a *App) isTerminal() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}
