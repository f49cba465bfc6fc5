// Package locale resolves localization keys from YAML catalogs. Each
// namespace is one YAML file. Nested mappings become dotted keys.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/chatview"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var builtin embed.FS

// Catalog holds translations keyed by namespace, then by dotted key.
type Catalog struct {
	namespaces map[string]map[string]string
}

var _ chatview.Translator = (*Catalog)(nil)

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(builtin, "locales")
	if err != nil {
		return nil, err
	}
	c := &Catalog{namespaces: make(map[string]map[string]string)}
	if err := c.loadFS(sub); err != nil {
		return nil, fmt.Errorf("load built-in catalog: %w", err)
	}
	return c, nil
}

// Load returns the built-in catalog with the namespaces found in dir applied
// on top. Keys missing from dir keep their built-in translation. A missing
// dir is an error.
func Load(dir string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return c, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("locale dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("locale dir %s: not a directory", dir)
	}
	if err := c.loadFS(os.DirFS(dir)); err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	return c, nil
}

// Translate returns the translation of key in namespace ns with every
// {{param}} placeholder replaced. Unknown keys translate to the key itself.
func (c *Catalog) Translate(key string, params map[string]string, ns string) string {
	text, ok := c.namespaces[ns][key]
	if !ok {
		text = key
	}
	return interpolate(text, params)
}

// Has reports whether the catalog defines key in namespace ns.
func (c *Catalog) Has(key, ns string) bool {
	_, ok := c.namespaces[ns][key]
	return ok
}

// catalogPattern selects the namespace files at the top of a catalog dir.
const catalogPattern = "*.{yaml,yml}"

func (c *Catalog) loadFS(fsys fs.FS) error {
	names, err := doublestar.Glob(fsys, catalogPattern, doublestar.WithFilesOnly())
	if err != nil {
		return err
	}
	slices.Sort(names)
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		ns := strings.TrimSuffix(name, path.Ext(name))
		if err := c.add(ns, data); err != nil {
			return fmt.Errorf("namespace %s: %w", ns, err)
		}
	}
	return nil
}

func (c *Catalog) add(ns string, data []byte) error {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}
	keys, ok := c.namespaces[ns]
	if !ok {
		keys = make(map[string]string)
		c.namespaces[ns] = keys
	}
	return flatten("", tree, keys)
}

var errNotText = errors.New("translation must be a string")

// flatten writes every leaf of tree into out under its dotted path.
func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case string:
			out[key] = v
		case map[string]any:
			if err := flatten(key, v, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: %w", key, errNotText)
		}
	}
	return nil
}

// interpolate replaces {{name}} placeholders with params. Placeholders
// without a param are left as they are.
func interpolate(text string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
