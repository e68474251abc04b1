package dataset

import (
	"fmt"

	"github.com/armon/go-radix"
)

// Entry 注册表中的一项数据
type Entry struct {
	Name  string
	Kind  string
	Count int
	Value any
}

// Registry 按名字(支持唯一前缀)查找数据集
type Registry struct {
	tree *radix.Tree
}

// NewRegistry 把一个 Set 里的数据按名字注册
func NewRegistry(set Set) *Registry {
	r := &Registry{tree: radix.New()}
	r.add(Entry{Name: "meters", Kind: "[]float64", Count: len(set.Meters), Value: set.Meters})
	r.add(Entry{Name: "numbers", Kind: "[]int", Count: len(set.Numbers), Value: set.Numbers})
	r.add(Entry{Name: "planets", Kind: "[]string", Count: len(set.Planets), Value: set.Planets})
	r.add(Entry{Name: "names", Kind: "[][]string", Count: len(set.Names), Value: set.Names})
	r.add(Entry{Name: "scores", Kind: "[]string", Count: len(set.Scores), Value: set.Scores})
	r.add(Entry{Name: "addresses", Kind: "[]Address", Count: len(set.Addresses), Value: set.Addresses})
	return r
}

func (r *Registry) add(e Entry) {
	r.tree.Insert(e.Name, e)
}

// Len 注册的数据集个数
func (r *Registry) Len() int {
	return r.tree.Len()
}

// Match 返回名字以 prefix 开头的全部数据集，按名字升序
func (r *Registry) Match(prefix string) []Entry {
	var out []Entry
	r.tree.WalkPrefix(prefix, func(_ string, v any) bool {
		out = append(out, v.(Entry))
		return false
	})
	return out
}

// Resolve 精确匹配优先，否则要求前缀唯一
func (r *Registry) Resolve(prefix string) (Entry, error) {
	if v, ok := r.tree.Get(prefix); ok {
		return v.(Entry), nil
	}
	matches := r.Match(prefix)
	switch len(matches) {
	case 0:
		return Entry{}, fmt.Errorf("没有名字以 %q 开头的数据集", prefix)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return Entry{}, fmt.Errorf("前缀 %q 不唯一: %v", prefix, names)
	}
}
