package setup

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jeffs/conf/internal/cmdexec"
	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/doctor"
)

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	Runner     cmdexec.Runner
	FormRunner FormRunner
	Home       string // 테스트용. 비어있으면 os.UserHomeDir.
	Shell      string // 테스트용. 비어있으면 $SHELL에서 감지.
	Out        io.Writer
	Err        io.Writer
}

// Run은 setup 플로우를 실행한다.
func (r *Runner) Run(ctx context.Context) error {
	_, statErr := os.Stat(r.CfgPath)
	exists := statErr == nil

	cfg, err := config.Load(r.CfgPath)
	if err != nil {
		return err
	}

	if exists {
		ok, err := r.FormRunner.RunConfirm(fmt.Sprintf("%s 설정을 수정하시겠습니까?", r.CfgPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out(), "변경 없음")
			return nil
		}
	} else {
		fmt.Fprintln(r.out(), "jsh 초기 설정을 시작합니다.")
	}

	interactive, _ := cfg.IsInteractive()
	input, err := r.FormRunner.RunSetupForm(Input{
		EnvFile:     cfg.EnvFile,
		LogRoot:     cfg.LogRoot,
		Editor:      cfg.Bin.Editor,
		Interactive: interactive,
		InstallHook: !exists,
	})
	if err != nil {
		return err
	}

	cfg.EnvFile = input.EnvFile
	cfg.LogRoot = input.LogRoot
	cfg.Bin.Editor = input.Editor
	if input.Interactive {
		t := true
		cfg.Interactive = &t
	} else {
		cfg.Interactive = nil
	}

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(r.out(), "설정 파일이 저장되었습니다: %s\n", r.CfgPath)

	if input.InstallHook {
		r.installHook()
	}

	r.runDoctor(ctx, cfg)
	return nil
}

func (r *Runner) installHook() {
	shellType := r.Shell
	if shellType == "" {
		shellType = DetectShell()
	}
	rcPath := ShellRCPath(shellType, r.home())
	if rcPath == "" {
		fmt.Fprintf(r.errw(), "경고: 지원하지 않는 셸이라 hook을 설치하지 않음: %s\n", shellType)
		return
	}
	action, err := InstallShellHook(shellType, rcPath)
	if err != nil {
		fmt.Fprintf(r.errw(), "경고: 셸 hook 설치 실패: %v\n", err)
		return
	}
	switch action {
	case HookAppended:
		fmt.Fprintf(r.out(), "셸 hook이 설치되었습니다: %s\n", rcPath)
	case HookReplaced:
		fmt.Fprintf(r.out(), "셸 hook을 최신 버전으로 교체했습니다: %s\n", rcPath)
	default:
		fmt.Fprintf(r.out(), "셸 hook이 이미 최신입니다: %s\n", rcPath)
	}
}

// runDoctor는 설정 완료 후 환경 진단을 실행한다.
func (r *Runner) runDoctor(ctx context.Context, cfg *config.Config) {
	fmt.Fprintln(r.out(), "\n환경 진단 실행 중...")
	doctor.Print(r.out(), doctor.RunAll(ctx, r.Runner, cfg, r.CfgPath, r.home()))
}

func (r *Runner) home() string {
	if r.Home != "" {
		return r.Home
	}
	home, _ := os.UserHomeDir()
	return home
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) errw() io.Writer {
	if r.Err == nil {
		return os.Stderr
	}
	return r.Err
}
