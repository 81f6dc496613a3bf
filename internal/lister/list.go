// Package lister는 디렉토리 내용을 타입이 지정된 항목 목록으로 만든다.
// 디렉토리는 /bin/ls처럼 재귀하지 않고 한 단계만 펼친다.
package lister

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Kind는 파일 시스템 항목의 종류다.
type Kind int

// Kind 값. 판별 순서는 Symlink가 가장 먼저다.
const (
	Unknown Kind = iota
	Symlink
	Dir
	File
	FIFO
	Socket
	Block
	Char
)

var kindNames = map[Kind]string{
	Symlink: "symlink",
	Dir:     "dir",
	File:    "file",
	FIFO:    "fifo",
	Socket:  "socket",
	Block:   "block",
	Char:    "char",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "?"
}

// KindOf는 Lstat 결과의 mode로 Kind를 정한다.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case mode.IsDir():
		return Dir
	case mode.IsRegular():
		return File
	case mode&fs.ModeNamedPipe != 0:
		return FIFO
	case mode&fs.ModeSocket != 0:
		return Socket
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice == 0:
		return Block
	case mode&fs.ModeCharDevice != 0:
		return Char
	}
	return Unknown
}

// Entry는 목록의 한 행이다.
type Entry struct {
	Name     string
	Kind     Kind
	Size     uint64
	Modified time.Time
}

// List는 paths 각각을 펼친 항목을 반환한다. paths가 비어 있으면 "."이다.
// 디렉토리(링크를 따라간 결과)는 내용을, 그 밖의 경로는 자기 자신을 한 항목으로 낸다.
// 첫 실패에서 중단한다.
func List(paths []string) ([]Entry, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var entries []Entry
	for _, p := range paths {
		names, err := expand(p)
		if err != nil {
			return nil, fmt.Errorf("lister.List: %w", err)
		}
		for _, name := range names {
			e, err := stat(name)
			if err != nil {
				return nil, fmt.Errorf("lister.List: %w", err)
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		// 깨진 링크 등은 Lstat 단계에서 자기 자신으로 보고된다.
		return []string{path}, nil
	}
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(dirents))
	for i, d := range dirents {
		names[i] = filepath.Join(path, d.Name())
	}
	return names, nil
}

func stat(name string) (Entry, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return Entry{}, err
	}
	size := info.Size()
	if size < 0 {
		size = 0
	}
	return Entry{
		Name:     name,
		Kind:     KindOf(info.Mode()),
		Size:     uint64(size),
		Modified: info.ModTime(),
	}, nil
}
