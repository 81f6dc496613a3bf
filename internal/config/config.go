// Package config는 jsh 설정 파일(TOML)을 읽고 쓴다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일이 있지만 해석할 수 없을 때의 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// DefaultEnvFile은 저장된 환경 변수 파일의 기본 경로다.
const DefaultEnvFile = "~/conf/var/env.json"

// DefaultLogRoot는 cl alias가 날짜별 디렉토리를 만드는 기본 위치다.
const DefaultLogRoot = "~/log"

// Config는 jsh 설정 파일의 최상위 구조체다.
type Config struct {
	Version     int                 `toml:"version"`
	EnvFile     string              `toml:"env_file"`
	Interactive *bool               `toml:"interactive"`
	LogRoot     string              `toml:"log_root"`
	Bin         Bin                 `toml:"bin"`
	Passthrough map[string][]string `toml:"passthrough"`
}

// Bin은 외부 실행 파일 경로다. 비어 있으면 PATH에서 찾는다.
type Bin struct {
	JJ     string `toml:"jj"`
	Jump   string `toml:"jump"`
	Yazi   string `toml:"yazi"`
	Eza    string `toml:"eza"`
	Editor string `toml:"editor"`
	Opener string `toml:"opener"`
	Git    string `toml:"git"`
	Glow   string `toml:"glow"`
}

// Default는 설정 파일이 없을 때 쓰는 Config다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath는 "<home>/.config/jsh/config.toml"이다.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "jsh", "config.toml")
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값을, 파싱 실패나 검증 실패면 ErrConfig를 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 cfg를 path에 0600 권한으로 쓴다. 상위 디렉토리가 없으면 만든다.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	// 기존 파일이면 OpenFile이 권한을 바꾸지 않는다.
	if err := f.Chmod(0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// IsInteractive는 interactive 설정값과 설정 여부를 반환한다.
func (c *Config) IsInteractive() (value, set bool) {
	if c.Interactive == nil {
		return false, false
	}
	return *c.Interactive, true
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

// Binaries는 [bin] 항목을 이름 순서로 돌려준다.
func (c *Config) Binaries() []NamedBin {
	return []NamedBin{
		{"editor", c.Bin.Editor},
		{"eza", c.Bin.Eza},
		{"git", c.Bin.Git},
		{"glow", c.Bin.Glow},
		{"jj", c.Bin.JJ},
		{"jump", c.Bin.Jump},
		{"opener", c.Bin.Opener},
		{"yazi", c.Bin.Yazi},
	}
}

// NamedBin은 설정 키와 실행 파일 경로의 쌍이다.
type NamedBin struct {
	Key  string
	Path string
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.EnvFile == "" {
		c.EnvFile = DefaultEnvFile
	}
	if c.LogRoot == "" {
		c.LogRoot = DefaultLogRoot
	}
	if c.Bin.JJ == "" {
		c.Bin.JJ = "jj"
	}
	if c.Bin.Jump == "" {
		c.Bin.Jump = "jump"
	}
	if c.Bin.Yazi == "" {
		c.Bin.Yazi = "yazi"
	}
	if c.Bin.Eza == "" {
		c.Bin.Eza = "eza"
	}
	if c.Bin.Git == "" {
		c.Bin.Git = "git"
	}
	if c.Bin.Glow == "" {
		c.Bin.Glow = "glow"
	}
	if c.Bin.Editor == "" {
		c.Bin.Editor = "edit"
	}
	if c.Bin.Opener == "" {
		if runtime.GOOS == "darwin" {
			c.Bin.Opener = "open"
		} else {
			c.Bin.Opener = "xdg-open"
		}
	}
}

func (c *Config) validate() error {
	names := make([]string, 0, len(c.Passthrough))
	for name := range c.Passthrough {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == "" || strings.ContainsAny(name, " \t/") {
			return fmt.Errorf("config.Load: %w: passthrough 이름이 잘못됨: %q", ErrConfig, name)
		}
		if len(c.Passthrough[name]) == 0 {
			return fmt.Errorf("config.Load: %w: passthrough.%s 실행 파일 필수", ErrConfig, name)
		}
	}
	return nil
}
