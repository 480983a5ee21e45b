// Package ruleset loads a read-only catalog of named example rules from
// ".rule" files in a directory. Presets are offered to users of the web form
// as starting points; they are compiled on load so a broken file fails fast
// instead of surfacing as a form error later.
package ruleset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"rulegate/rule"
)

// Preset is a named, pre-validated rule.
type Preset struct {
	Name string
	Text string
}

type Catalog struct {
	presets []Preset
}

// Load reads every ".rule" file directly under dir. The preset name is the
// file name without its extension; the rule text is the trimmed file body.
func Load(fs billy.Filesystem, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read rule directory '%s': %w", dir, err)
	}

	c := &Catalog{}

	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".rule")
		if entry.IsDir() || !ok {
			continue
		}

		blob, err := util.ReadFile(fs, fs.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read rule file '%s': %w", entry.Name(), err)
		}

		text := strings.TrimSpace(string(blob))
		if _, err := rule.Compile(text); err != nil {
			return nil, fmt.Errorf("invalid rule in '%s': %w", entry.Name(), err)
		}

		c.presets = append(c.presets, Preset{Name: name, Text: text})
	}

	sort.Slice(c.presets, func(i, j int) bool { return c.presets[i].Name < c.presets[j].Name })

	return c, nil
}

// Presets returns the catalog in name order. A nil catalog is empty.
func (c *Catalog) Presets() []Preset {
	if c == nil {
		return nil
	}

	return c.presets
}
