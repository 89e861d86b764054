package translations

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"remi-card/internal/domain/model"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Source loads one translation file per language from a filesystem.
// Files are named <lang>.json, <lang>.yaml or <lang>.yml.
type Source struct {
	fsys fs.FS
	dir  string
}

// NewEmbeddedSource serves the translations compiled into the binary.
func NewEmbeddedSource() *Source {
	return &Source{fsys: embeddedLocales, dir: "locales"}
}

func NewDirSource(dir string) *Source {
	return &Source{fsys: os.DirFS(dir), dir: "."}
}

func NewFSSource(fsys fs.FS, dir string) *Source {
	return &Source{fsys: fsys, dir: dir}
}

func (s *Source) Load(ctx context.Context) (model.LanguageTable, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return model.LanguageTable{}, fmt.Errorf("failed to read locales directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	trees := make(map[string]model.Tree)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return model.LanguageTable{}, err
		}
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		lang := strings.ToLower(strings.TrimSuffix(name, ext))
		if _, exists := trees[lang]; exists {
			return model.LanguageTable{}, fmt.Errorf("duplicate translations for language %q (%s)", lang, name)
		}

		content, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
		if err != nil {
			return model.LanguageTable{}, fmt.Errorf("failed to read file %s: %w", name, err)
		}

		tree, err := decode(ext, content)
		if err != nil {
			return model.LanguageTable{}, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		trees[lang] = tree
	}

	if len(trees) == 0 {
		return model.LanguageTable{}, fmt.Errorf("no translation files found")
	}
	if _, ok := trees["en"]; !ok {
		return model.LanguageTable{}, fmt.Errorf("english translations are required")
	}
	return model.NewLanguageTable(trees), nil
}

func decode(ext string, content []byte) (model.Tree, error) {
	var raw map[string]interface{}
	switch ext {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, err
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("empty translation file")
	}
	return model.ParseTree(raw)
}
