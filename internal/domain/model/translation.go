package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Node is either a leaf string or a nested Tree.
type Node struct {
	leaf   string
	branch Tree
	isLeaf bool
}

// Leaf wraps a translated string.
func Leaf(s string) Node {
	return Node{leaf: s, isLeaf: true}
}

// Branch wraps a nested tree.
func Branch(t Tree) Node {
	return Node{branch: t}
}

func (n Node) Text() (string, bool) {
	return n.leaf, n.isLeaf
}

func (n Node) Subtree() (Tree, bool) {
	if n.isLeaf {
		return nil, false
	}
	return n.branch, true
}

func (n Node) MarshalJSON() ([]byte, error) {
	if n.isLeaf {
		return json.Marshal(n.leaf)
	}
	if n.branch == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(n.branch)
}

// Tree holds the translations of one language, keyed by topic.
type Tree map[string]Node

// ParseTree converts decoded JSON/YAML data into a Tree. Only strings and
// nested mappings are accepted; everything else is reported with its path.
func ParseTree(raw map[string]interface{}) (Tree, error) {
	return parseTree(raw, "")
}

func parseTree(raw map[string]interface{}, prefix string) (Tree, error) {
	tree := make(Tree, len(raw))
	for key, value := range raw {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("empty key under %q", prefix)
		}
		if strings.Contains(key, ".") {
			return nil, fmt.Errorf("key %q must not contain '.'", path)
		}

		switch v := value.(type) {
		case string:
			if v == "" {
				return nil, fmt.Errorf("empty translation at %q", path)
			}
			tree[key] = Leaf(v)
		case map[string]interface{}:
			sub, err := parseTree(v, path)
			if err != nil {
				return nil, err
			}
			tree[key] = Branch(sub)
		default:
			return nil, fmt.Errorf("invalid translation at %q: expected string or mapping, got %T", path, value)
		}
	}
	return tree, nil
}

// LanguageTable maps lowercase language codes to their trees. It holds its
// own copy of every tree and is never modified after construction. Trees
// returned by Tree are shared and must be treated as read-only.
type LanguageTable struct {
	trees map[string]Tree
}

func NewLanguageTable(trees map[string]Tree) LanguageTable {
	t := LanguageTable{trees: make(map[string]Tree, len(trees))}
	for lang, tree := range trees {
		t.trees[strings.ToLower(lang)] = cloneTree(tree)
	}
	return t
}

func cloneTree(tree Tree) Tree {
	out := make(Tree, len(tree))
	for key, node := range tree {
		if sub, ok := node.Subtree(); ok {
			out[key] = Branch(cloneTree(sub))
			continue
		}
		out[key] = node
	}
	return out
}

func (t LanguageTable) Tree(lang string) (Tree, bool) {
	tree, ok := t.trees[lang]
	return tree, ok
}

func (t LanguageTable) Has(lang string) bool {
	_, ok := t.trees[lang]
	return ok
}

// Languages returns the sorted language codes.
func (t LanguageTable) Languages() []string {
	langs := make([]string, 0, len(t.trees))
	for lang := range t.trees {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
