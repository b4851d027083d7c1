// Package i18n loads per-language translation trees and resolves dotted
// keys with an active -> default -> literal key fallback chain.
package i18n

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Resource file names inside each language directory.
const (
	MainFile         = "main.json"
	QuestionsFile    = "questions.json"
	DescriptionsFile = "question_descriptions.json"
)

// questionsBranch is the key under which questions.json is mounted.
const questionsBranch = "questions"

// Options configures a Store.
type Options struct {
	// FS is rooted at the locales directory: one sub-directory per language.
	FS fs.FS
	// DefaultLanguage terminates every fallback chain before the literal key.
	DefaultLanguage string
	// Supported restricts the language set. Empty means discover from FS.
	Supported []string
	Logger    *zap.Logger
}

type bundle struct {
	text         Branch
	descriptions map[string]map[string]string
}

// Store holds loaded language bundles and the active-language cursor.
type Store struct {
	mu        sync.RWMutex
	fsys      fs.FS
	def       string
	active    string
	supported []string
	bundles   map[string]*bundle
	log       *zap.Logger
}

// New creates a Store, loads the default language and makes it active.
func New(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	def := opts.DefaultLanguage
	if def == "" {
		def = "en"
	}

	s := &Store{
		fsys:    opts.FS,
		def:     def,
		active:  def,
		bundles: make(map[string]*bundle),
		log:     log,
	}

	supported := slices.Clone(opts.Supported)
	if len(supported) == 0 {
		supported = s.discover()
	}
	if !slices.Contains(supported, def) {
		supported = append(supported, def)
	}
	slices.Sort(supported)
	s.supported = slices.Compact(supported)

	s.bundles[def] = s.readBundle(def)
	return s
}

// discover lists the language directories at the root of the FS.
func (s *Store) discover() []string {
	if s.fsys == nil {
		return nil
	}
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		s.log.Warn("cannot list locales", zap.Error(err))
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	return langs
}

// LoadLanguage (re)reads the resources for code and caches them. An
// unsupported code is replaced by the default language. Returns the code
// that was actually loaded.
func (s *Store) LoadLanguage(code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	code = s.substitute(code)
	s.bundles[code] = s.readBundle(code)
	return code
}

// Preload loads every supported language that is not cached yet.
func (s *Store) Preload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, code := range s.supported {
		if _, ok := s.bundles[code]; !ok {
			s.bundles[code] = s.readBundle(code)
		}
	}
}

// SetActiveLanguage switches the cursor. It returns false, leaving the
// active language unchanged, when code is not supported.
func (s *Store) SetActiveLanguage(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.supported, code) {
		return false
	}
	if _, ok := s.bundles[code]; !ok {
		s.bundles[code] = s.readBundle(code)
	}
	s.active = code
	s.log.Debug("active language changed", zap.String("language", code))
	return true
}

// Resolve looks up a dotted key in the active language.
func (s *Store) Resolve(key string, params Params) string {
	return s.ResolveIn(s.ActiveLanguage(), key, params)
}

// ResolveQuestion looks up a key under the questions namespace.
func (s *Store) ResolveQuestion(key string, params Params) string {
	return s.Resolve(questionsBranch+"."+key, params)
}

// ResolveIn looks up a dotted key in lang, then the default language, then
// returns key itself. When params are given, {name} placeholders are
// substituted; a failed substitution yields the unsubstituted text.
func (s *Store) ResolveIn(lang, key string, params Params) string {
	lang = s.ensure(lang)

	s.mu.RLock()
	text, ok := s.bundles[lang].lookup(key)
	if !ok && lang != s.def {
		text, ok = s.bundles[s.def].lookup(key)
	}
	s.mu.RUnlock()

	if !ok {
		return key
	}
	if len(params) == 0 {
		return text
	}
	out, err := Format(text, params)
	if err != nil {
		s.log.Debug("translation substitution failed",
			zap.String("key", key), zap.String("language", lang), zap.Error(err))
	}
	return out
}

// ResolveDescription returns the translated description of token under
// namespace in the active language, falling back to the default language,
// then to token itself.
func (s *Store) ResolveDescription(namespace, token string) string {
	return s.ResolveDescriptionIn(s.ActiveLanguage(), namespace, token)
}

// ResolveDescriptionIn is ResolveDescription with an explicit language.
func (s *Store) ResolveDescriptionIn(lang, namespace, token string) string {
	lang = s.ensure(lang)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.bundles[lang].description(namespace, token); ok {
		return d
	}
	if d, ok := s.bundles[s.def].description(namespace, token); ok {
		return d
	}
	return token
}

// ensure returns a supported language code with its bundle loaded.
func (s *Store) ensure(lang string) string {
	s.mu.RLock()
	if !slices.Contains(s.supported, lang) {
		lang = s.def
	}
	_, loaded := s.bundles[lang]
	s.mu.RUnlock()
	if loaded {
		return lang
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bundles[lang]; !ok {
		s.bundles[lang] = s.readBundle(lang)
	}
	return lang
}

// substitute maps an unsupported code to the default language. Callers hold mu.
func (s *Store) substitute(code string) string {
	if slices.Contains(s.supported, code) {
		return code
	}
	s.log.Warn("language not supported, using default",
		zap.String("requested", code), zap.String("default", s.def))
	return s.def
}

// SupportedLanguages returns a copy of the supported language codes, sorted.
func (s *Store) SupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.supported)
}

// ActiveLanguage returns the current cursor.
func (s *Store) ActiveLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// DefaultLanguage returns the fallback language.
func (s *Store) DefaultLanguage() string {
	return s.def
}

// IsSupported reports whether code is in the supported set.
func (s *Store) IsSupported(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.supported, code)
}

// readBundle reads every resource of one language. Missing files are
// skipped silently; malformed ones are logged and skipped. Callers hold mu.
func (s *Store) readBundle(code string) *bundle {
	b := &bundle{}
	if s.fsys == nil {
		return b
	}

	if data, ok := s.readResource(code, MainFile); ok {
		tree, err := ParseTree(data)
		if err != nil {
			s.log.Warn("malformed translation resource",
				zap.String("language", code), zap.String("file", MainFile), zap.Error(err))
		} else {
			b.text = tree
		}
	}

	if data, ok := s.readResource(code, QuestionsFile); ok {
		tree, err := ParseTree(data)
		if err != nil {
			s.log.Warn("malformed translation resource",
				zap.String("language", code), zap.String("file", QuestionsFile), zap.Error(err))
		} else {
			if b.text == nil {
				b.text = make(Branch)
			}
			b.text[questionsBranch] = tree
		}
	}

	if data, ok := s.readResource(code, DescriptionsFile); ok {
		descs, err := ParseDescriptions(data)
		if err != nil {
			s.log.Warn("malformed translation resource",
				zap.String("language", code), zap.String("file", DescriptionsFile), zap.Error(err))
		} else {
			b.descriptions = descs
		}
	}

	s.log.Info("translations loaded", zap.String("language", code))
	return b
}

func (s *Store) readResource(code, name string) ([]byte, bool) {
	data, err := fs.ReadFile(s.fsys, path.Join(code, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("cannot read translation resource",
				zap.String("language", code), zap.String("file", name), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (b *bundle) lookup(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	return b.text.Lookup(key)
}

func (b *bundle) description(namespace, token string) (string, bool) {
	if b == nil || b.descriptions == nil {
		return "", false
	}
	d, ok := b.descriptions[namespace][token]
	return d, ok
}
