// Package prompt는 프롬프트를 그릴 때마다 다시 계산되는 동적 필드를 제공한다.
package prompt

import (
	"context"
	"os"
	"sort"

	"github.com/jeffs/conf/internal/navigate"
)

// BookmarkSource는 현재 change의 bookmark를 조회한다. *vcs.Adapter가 구현한다.
type BookmarkSource interface {
	Bookmarks(ctx context.Context) (string, error)
}

// BranchResolver는 curr_branch 필드 값을 계산한다. 결과를 캐시하지 않는다.
type BranchResolver struct {
	Source BookmarkSource
}

// Resolve는 bookmark 목록과 true를 반환한다. jj가 없거나 실패하면 "", false다.
func (r *BranchResolver) Resolve(ctx context.Context) (string, bool) {
	if r == nil || r.Source == nil {
		return "", false
	}
	out, err := r.Source.Bookmarks(ctx)
	if err != nil {
		return "", false
	}
	return out, true
}

// Field는 프롬프트 필드 하나를 계산한다. 값이 없으면 false를 반환한다.
type Field func(ctx context.Context) (string, bool)

// Fields는 필드 이름과 계산 함수의 표다.
type Fields map[string]Field

// 필드 이름.
const (
	FieldBranch = "curr_branch"
	FieldCwd    = "cwd"
)

// DefaultFields는 curr_branch와 cwd 필드를 설치한 표를 만든다.
func DefaultFields(branch *BranchResolver, nav *navigate.Navigator) Fields {
	return Fields{
		FieldBranch: branch.Resolve,
		FieldCwd: func(context.Context) (string, bool) {
			wd, err := os.Getwd()
			if err != nil {
				return "", false
			}
			return nav.Abbrev(wd), true
		},
	}
}

// Resolve는 모든 필드를 새로 계산한다. 값이 없는 필드는 결과에서 빠진다.
func (f Fields) Resolve(ctx context.Context) map[string]string {
	out := make(map[string]string, len(f))
	for name, field := range f {
		if v, ok := field(ctx); ok {
			out[name] = v
		}
	}
	return out
}

// Names는 필드 이름을 정렬해 반환한다.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
