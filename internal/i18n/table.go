package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"alfakhama_rentals/internal/domain"
)

//go:embed locales/*.toml
var localesFS embed.FS

// ErrIncompleteTable reports a Key missing from one of the languages.
var ErrIncompleteTable = errors.New("i18n: incomplete translation table")

// Table is the immutable key -> string mapping for every language.
type Table struct {
	localizers map[domain.Lang]*goi18n.Localizer
	tags       map[domain.Lang]language.Tag
}

// LoadTable reads the embedded message files.
func LoadTable() (*Table, error) {
	return LoadTableFS(localesFS, "locales")
}

// LoadTableFS reads active.<lang>.toml for every supported language from dir
// and checks that each Key is defined in all of them.
func LoadTableFS(fsys fs.FS, dir string) (*Table, error) {
	bundle := goi18n.NewBundle(language.Arabic)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Table{
		localizers: make(map[domain.Lang]*goi18n.Localizer, len(domain.Langs())),
		tags:       make(map[domain.Lang]language.Tag, len(domain.Langs())),
	}
	for _, l := range domain.Langs() {
		file := path.Join(dir, fmt.Sprintf("active.%s.toml", l))
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		t.tags[l] = language.Make(string(l))
		t.localizers[l] = goi18n.NewLocalizer(bundle, string(l))
	}

	var missing []error
	for _, l := range domain.Langs() {
		for _, k := range Keys() {
			if _, ok := t.Lookup(l, string(k)); !ok {
				missing = append(missing, fmt.Errorf("%w: %s missing %q", ErrIncompleteTable, l, k))
			}
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
	return t, nil
}

// MustLoadTable is LoadTable for tests and init paths.
func MustLoadTable() *Table {
	t, err := LoadTable()
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the entry for key defined in exactly lang. Entries that only
// exist in another language are reported as missing.
func (t *Table) Lookup(lang domain.Lang, key string) (string, bool) {
	if t == nil {
		return "", false
	}
	loc, ok := t.localizers[lang]
	if !ok {
		return "", false
	}
	msg, tag, err := loc.LocalizeWithTag(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil || tag != t.tags[lang] {
		return "", false
	}
	return msg, true
}

// Translate is the stateless form of Provider.Translate.
func (t *Table) Translate(lang domain.Lang, key string) string {
	if msg, ok := t.Lookup(lang, key); ok {
		return msg
	}
	return key
}
