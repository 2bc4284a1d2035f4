package dictionary

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed locales/*.json
var locales embed.FS

// DefaultLanguage is used when a lookup names a language without an entry.
const DefaultLanguage = "en"

// Dictionary maps language codes to label tables.
type Dictionary struct {
	tables   map[string]map[string]string
	fallback string
}

// Load reads the label tables bundled with the binary.
func Load() (*Dictionary, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	tables := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".json" {
			continue
		}
		raw, err := locales.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}
		tables[strings.TrimSuffix(name, ".json")] = table
	}

	return New(tables, DefaultLanguage), nil
}

// New builds a dictionary from in-memory tables.
func New(tables map[string]map[string]string, fallback string) *Dictionary {
	if tables == nil {
		tables = map[string]map[string]string{}
	}
	return &Dictionary{tables: tables, fallback: fallback}
}

// Lookup resolves key in lang, then in the fallback language. Unknown keys
// resolve to themselves.
func (d *Dictionary) Lookup(lang, key string) string {
	if v, ok := d.tables[strings.ToLower(lang)][key]; ok {
		return v
	}
	if v, ok := d.tables[d.fallback][key]; ok {
		return v
	}
	return key
}

// Languages lists the loaded language codes.
func (d *Dictionary) Languages() []string {
	out := make([]string, 0, len(d.tables))
	for lang := range d.tables {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
