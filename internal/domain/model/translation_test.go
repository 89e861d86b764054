package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTree(t *testing.T) {
	tree, err := ParseTree(map[string]interface{}{
		"common": map[string]interface{}{"off": "Off"},
		"title":  "Rémi",
	})
	require.NoError(t, err)

	common, ok := tree["common"].Subtree()
	require.True(t, ok)
	off, ok := common["off"].Text()
	assert.True(t, ok)
	assert.Equal(t, "Off", off)

	_, ok = tree["title"].Subtree()
	assert.False(t, ok)
	title, ok := tree["title"].Text()
	assert.True(t, ok)
	assert.Equal(t, "Rémi", title)
}

func TestParseTree_RejectsInvalidLeaves(t *testing.T) {
	cases := map[string]map[string]interface{}{
		"number": {"common": map[string]interface{}{"count": 3.0}},
		"bool":   {"common": map[string]interface{}{"off": false}},
		"nil":    {"common": nil},
		"array":  {"common": []interface{}{"a"}},
		"empty":  {"common": map[string]interface{}{"off": ""}},
		"dotted": {"common.off": "Off"},
		"blank":  {" ": "x"},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTree(raw)
			assert.Error(t, err)
		})
	}

	_, err := ParseTree(map[string]interface{}{"common": map[string]interface{}{"count": 3.0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "common.count")
}

func TestTree_MarshalJSON(t *testing.T) {
	tree := Tree{
		"common": Branch(Tree{"off": Leaf("Off")}),
		"empty":  Branch(nil),
	}
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"common":{"off":"Off"},"empty":{}}`, string(data))
}

func TestLanguageTable(t *testing.T) {
	en := Tree{"a": Leaf("A")}
	src := map[string]Tree{"EN": en, "fr": {}}
	table := NewLanguageTable(src)

	// Later changes to the input map do not leak in
	src["de"] = Tree{}

	assert.True(t, table.Has("en"))
	assert.False(t, table.Has("EN"))
	assert.False(t, table.Has("de"))
	assert.Equal(t, []string{"en", "fr"}, table.Languages())

	got, ok := table.Tree("en")
	assert.True(t, ok)
	assert.Equal(t, en, got)
}

func TestLanguageTable_CopiesTrees(t *testing.T) {
	common := Tree{"off": Leaf("Off")}
	en := Tree{"a": Leaf("A"), "common": Branch(common)}
	table := NewLanguageTable(map[string]Tree{"en": en})

	en["a"] = Leaf("changed")
	en["b"] = Leaf("B")
	common["off"] = Leaf("changed")

	got, ok := table.Tree("en")
	require.True(t, ok)
	assert.Equal(t, Leaf("A"), got["a"])
	assert.NotContains(t, got, "b")

	sub, ok := got["common"].Subtree()
	require.True(t, ok)
	text, ok := sub["off"].Text()
	assert.True(t, ok)
	assert.Equal(t, "Off", text)
}
