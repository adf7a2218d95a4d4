// Package i18n maps (language, key) pairs to UI strings for the two
// supported languages. Catalogs are embedded YAML files.
package i18n

import (
	"embed"
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/pali/internal/domain"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// catalogFile is the on-disk shape of one locale file.
type catalogFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds every loaded translation. It is immutable after loading.
type Catalog struct {
	translations map[domain.Language]map[string]string
	matcher      language.Matcher
}

var defaultCatalog = mustLoad()

func mustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded catalogs are broken: %v", err))
	}
	return c
}

// Load parses the embedded catalogs of every supported language.
func Load() (*Catalog, error) {
	c := &Catalog{
		translations: make(map[domain.Language]map[string]string, len(domain.Languages)),
	}

	tags := make([]language.Tag, 0, len(domain.Languages))
	for _, lang := range domain.Languages {
		path := fmt.Sprintf("locales/%s.yaml", lang)
		data, err := localesFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if f.Language != string(lang) {
			return nil, fmt.Errorf("%s declares language %q", path, f.Language)
		}

		c.translations[lang] = f.Messages
		tags = append(tags, language.Make(string(lang)))
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// T translates key into lang. A key missing from lang's catalog is
// returned unchanged.
func (c *Catalog) T(lang domain.Language, key string) string {
	if s, ok := c.translations[lang][key]; ok && s != "" {
		return s
	}
	return key
}

// Match resolves a language tag or Accept-Language header value ("en-US",
// "my;q=0.9, en;q=0.5") to a supported language, or fallback when nothing
// matches.
func (c *Catalog) Match(raw string, fallback domain.Language) domain.Language {
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return domain.Languages[idx]
}

// T translates key with the embedded catalogs.
func T(lang domain.Language, key string) string {
	return defaultCatalog.T(lang, key)
}

// Match resolves raw with the embedded catalogs.
func Match(raw string, fallback domain.Language) domain.Language {
	return defaultCatalog.Match(raw, fallback)
}
