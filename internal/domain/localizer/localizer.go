// Package localizer resolves dot-separated translation keys against a
// LanguageTable, falling back to English and then to the key itself.
package localizer

import (
	"strings"

	"remi-card/internal/domain/model"
)

const DefaultLanguage = "en"

type Localizer struct {
	table model.LanguageTable
}

func New(table model.LanguageTable) *Localizer {
	return &Localizer{table: table}
}

// ResolvePath walks tree along the dot-separated path. It stops at the first
// missing segment and only reports leaves as found.
func ResolvePath(tree model.Tree, path string) (string, bool) {
	current := tree
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		node, ok := current[segment]
		if !ok {
			return "", false
		}
		if i == len(segments)-1 {
			return node.Text()
		}
		if current, ok = node.Subtree(); !ok {
			return "", false
		}
	}
	return "", false
}

// NormalizeLanguage lowercases tag and strips any region subtag,
// so "EN-us" becomes "en".
func NormalizeLanguage(tag string) string {
	lang, _, _ := strings.Cut(strings.ToLower(tag), "-")
	return lang
}

// Localize never fails: a key missing from both the requested language and
// English is returned unchanged.
func (l *Localizer) Localize(key, language string) string {
	lang := NormalizeLanguage(language)

	if tree, ok := l.table.Tree(lang); ok {
		if s, ok := ResolvePath(tree, key); ok {
			return s
		}
	}

	if lang != DefaultLanguage {
		if tree, ok := l.table.Tree(DefaultLanguage); ok {
			if s, ok := ResolvePath(tree, key); ok {
				return s
			}
		}
	}

	return key
}

func (l *Localizer) LocalizeFace(face, language string) string {
	return l.Localize("face."+face, language)
}

func (l *Localizer) LocalizeCommon(key, language string) string {
	return l.Localize("common."+key, language)
}

func (l *Localizer) LocalizeEditor(field, language string) string {
	return l.Localize("editor."+field, language)
}

// Translations returns the tree served for language: its own when present,
// otherwise English. The returned code names the tree actually used.
func (l *Localizer) Translations(language string) (string, model.Tree) {
	lang := l.ServedLanguage(language)
	if tree, ok := l.table.Tree(lang); ok {
		return lang, tree
	}
	return DefaultLanguage, model.Tree{}
}

// ServedLanguage names the table that answers lookups for language:
// its own code when loaded, English otherwise.
func (l *Localizer) ServedLanguage(language string) string {
	if l.Supports(language) {
		return NormalizeLanguage(language)
	}
	return DefaultLanguage
}

func (l *Localizer) Languages() []string {
	return l.table.Languages()
}

func (l *Localizer) Supports(language string) bool {
	return l.table.Has(NormalizeLanguage(language))
}
