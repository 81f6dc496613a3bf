// Package jump은 짧은 이름을 디렉토리나 URL로 바꾸는 대상 데이터베이스다.
package jump

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PrefixesVar는 데이터베이스 디렉토리 목록(콜론 구분)을 담는 환경 변수다.
const PrefixesVar = "JUMP_PREFIXES"

// ErrTargetNotFound는 키에 해당하는 대상이 없을 때의 sentinel error다.
var ErrTargetNotFound = errors.New("대상을 찾을 수 없음")

// keys는 YAML 값 하나 또는 목록을 받는다.
type keys []string

func (k *keys) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}
		*k = keys{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*k = many
		return nil
	}
	return fmt.Errorf("line %d: 키는 문자열 또는 문자열 목록이어야 함", node.Line)
}

// DB는 키에서 원본 대상 값(경로, URL, 임의 문자열)으로의 매핑이다.
type DB struct {
	targets map[string]string
}

// NewDB는 빈 DB를 만든다.
func NewDB() *DB {
	return &DB{targets: make(map[string]string)}
}

// ReadFile은 "값: 키" 또는 "값: [키, ...]" 형태의 YAML 파일을 병합한다.
// 이미 있는 키는 덮어쓴다.
func (db *DB) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jump.ReadFile: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("jump.ReadFile: %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("jump.ReadFile: %s:%d: 매핑이 아님", path, root.Line)
	}
	// 파일 안에서도 등장 순서대로 덮어쓴다.
	for i := 0; i+1 < len(root.Content); i += 2 {
		var value string
		if err := root.Content[i].Decode(&value); err != nil {
			return fmt.Errorf("jump.ReadFile: %s:%d: %w", path, root.Content[i].Line, err)
		}
		var ks keys
		if err := root.Content[i+1].Decode(&ks); err != nil {
			return fmt.Errorf("jump.ReadFile: %s: %w", path, err)
		}
		for _, k := range ks {
			db.targets[k] = value
		}
	}
	return nil
}

// ReadDir은 dir의 *.yaml, *.yml 파일을 이름 순서로 병합한다.
// dir이 없으면 아무것도 하지 않는다.
func (db *DB) ReadDir(dir string) error {
	dirents, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("jump.ReadDir: %w", err)
	}
	var files []string
	for _, d := range dirents {
		ext := filepath.Ext(d.Name())
		if d.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		files = append(files, d.Name())
	}
	sort.Strings(files)
	for _, name := range files {
		if err := db.ReadFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Get은 key의 원본 대상 값을 반환한다.
func (db *DB) Get(key string) (string, bool) {
	v, ok := db.targets[key]
	return v, ok
}

// Len은 등록된 키 수다.
func (db *DB) Len() int { return len(db.targets) }

// Dirs는 데이터베이스 디렉토리 목록을 정한다.
// prefixes가 비어 있지 않으면 콜론으로 나눈 값을, 아니면 "<home>/.config/jump"를 쓴다.
func Dirs(prefixes, home string) []string {
	if prefixes == "" {
		return []string{filepath.Join(home, ".config", "jump")}
	}
	var dirs []string
	for _, p := range strings.Split(prefixes, ":") {
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// Load는 dirs를 차례로 읽어 DB를 만든다. 나중 디렉토리가 앞의 것을 덮어쓴다.
func Load(dirs []string) (*DB, error) {
	db := NewDB()
	for _, d := range dirs {
		if err := db.ReadDir(d); err != nil {
			return nil, err
		}
	}
	return db, nil
}
