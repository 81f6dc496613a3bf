package cli

import (
	"log/slog"

	"github.com/jeffs/conf/internal/alias"
	"github.com/jeffs/conf/internal/browser"
	"github.com/jeffs/conf/internal/builtin"
	"github.com/jeffs/conf/internal/config"
	"github.com/jeffs/conf/internal/navigate"
	"github.com/jeffs/conf/internal/prompt"
	"github.com/jeffs/conf/internal/session"
	"github.com/jeffs/conf/internal/vcs"
)

// sessionEnv는 하나의 세션에 필요한 것들을 순서대로 만든 결과다.
type sessionEnv struct {
	cfg        *config.Config
	state      *session.State
	logger     *slog.Logger
	nav        *navigate.Navigator
	dispatcher *alias.Dispatcher
	fields     prompt.Fields
}

// interactivity는 설정값, 명시적 플래그, stdin 터미널 여부 순으로 정한다.
type interactivity struct {
	flag    bool
	flagSet bool
}

func (a *App) interactive(cfg *config.Config, i interactivity) bool {
	if v, ok := cfg.IsInteractive(); ok {
		return v
	}
	if i.flagSet {
		return i.flag
	}
	return a.isTerminal()
}

// startSession은 설정 로드, bootstrap, alias 등록, 프롬프트 필드 설치를 이 순서로 수행한다.
// 환경 파일 실패는 경고만 남기고 계속한다.
func (a *App) startSession(i interactivity) (*sessionEnv, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}

	st := session.NewState(a.environ())
	logger := a.logger().With("session", st.ID)

	boot := &session.Bootstrap{Err: a.errw(), Logger: logger, Home: a.home()}
	_ = boot.Run(st, cfg.EnvFile)

	nav := &navigate.Navigator{Home: a.home()}
	run := a.runner()
	deps := &builtin.Deps{
		State:  st,
		Runner: run,
		Nav:    nav,
		Opener: &browser.Opener{Runner: run, Bin: cfg.Bin.Opener},
		Config: cfg,
		Err:    a.errw(),
		Logger: logger,
	}
	interactive := a.interactive(cfg, i)
	reg := builtin.NewRegistry(deps, interactive)
	logger.Debug("세션 시작", "interactive", interactive, "aliases", reg.Len())

	branch := &prompt.BranchResolver{Source: vcs.NewAdapter(run, cfg.Bin.JJ)}
	return &sessionEnv{
		cfg:        cfg,
		state:      st,
		logger:     logger,
		nav:        nav,
		dispatcher: &alias.Dispatcher{Registry: reg, Logger: logger},
		fields:     prompt.DefaultFields(branch, nav),
	}, nil
}
