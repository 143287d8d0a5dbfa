// Package dictionary loads the per-locale answer and guess lists.
//
// Lists ship embedded as data/<locale>.json. Setting Config.Dir (WORDS_DIR)
// reads <dir>/<locale>.json instead. A locale is loaded on first use and
// cached; answers are always valid guesses.
package dictionary

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/KirkDiggler/wordvibe/internal/match"
)

//go:embed data/*.json
var embedded embed.FS

// File is the on-disk shape of a locale's word list
type File struct {
	// Answers are the words a puzzle can pick, in a fixed order
	Answers []string `json:"answers"`

	// Guesses are additional words accepted as guesses
	Guesses []string `json:"guesses"`
}

type wordList struct {
	answers []string
	valid   map[string]struct{}
}

// Config for the dictionary
type Config struct {
	// Optional directory holding <locale>.json files; the embedded lists are used when empty
	Dir string
}

// Dictionary serves word lists by locale
type Dictionary struct {
	files fs.FS

	mu    sync.Mutex
	lists map[string]*wordList
}

// New creates a new dictionary
func New(cfg *Config) *Dictionary {
	var files fs.FS
	if cfg != nil && cfg.Dir != "" {
		files = os.DirFS(cfg.Dir)
	} else {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			// data/ is compiled in, Sub only fails on a malformed path
			panic(err)
		}
		files = sub
	}

	return NewFromFS(files)
}

// NewFromFS creates a dictionary reading <locale>.json from files
func NewFromFS(files fs.FS) *Dictionary {
	return &Dictionary{
		files: files,
		lists: make(map[string]*wordList),
	}
}

// Answers returns the answer words for locale in file order
func (d *Dictionary) Answers(locale string) ([]string, error) {
	wl, err := d.load(locale)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), wl.answers...), nil
}

// IsValidWord reports whether word is an accepted guess for locale
func (d *Dictionary) IsValidWord(locale, word string) (bool, error) {
	wl, err := d.load(locale)
	if err != nil {
		return false, err
	}
	_, ok := wl.valid[strings.ToLower(word)]
	return ok, nil
}

// Locales lists the locales with a word list, sorted
func (d *Dictionary) Locales() ([]string, error) {
	entries, err := fs.ReadDir(d.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list word lists: %w", err)
	}

	locales := lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			return "", false
		}
		return strings.TrimSuffix(e.Name(), ".json"), true
	})
	sort.Strings(locales)
	return locales, nil
}

func (d *Dictionary) load(locale string) (*wordList, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if wl, ok := d.lists[locale]; ok {
		return wl, nil
	}

	if locale == "" || strings.ContainsAny(locale, `/\.`) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	data, err := fs.ReadFile(d.files, locale+".json")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %q: %w", locale, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse word list %q: %w", locale, err)
	}

	answers := normalize(file.Answers)
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyAnswers, locale)
	}

	valid := lo.SliceToMap(answers, func(w string) (string, struct{}) {
		return w, struct{}{}
	})
	for _, w := range normalize(file.Guesses) {
		valid[w] = struct{}{}
	}

	wl := &wordList{answers: answers, valid: valid}
	d.lists[locale] = wl
	return wl, nil
}

// normalize lowercases, drops anything that is not a five-letter word and
// removes duplicates while keeping the first occurrence's position
func normalize(words []string) []string {
	cleaned := lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	return lo.Uniq(lo.Filter(cleaned, func(w string, _ int) bool {
		return match.ValidateShape(w) == nil
	}))
}
