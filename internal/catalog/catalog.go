// Package catalog loads question sources and serves filtered, localized
// views of the corpus.
package catalog

import (
	"math/rand"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// FilterAll selects every category or difficulty.
const FilterAll = "all"

// FallbackNamespace is used for categories without a namespace mapping.
const FallbackNamespace = "file_operations"

// DefaultNamespaces maps category labels to description namespaces.
var DefaultNamespaces = map[string]string{
	"File Operations":    "file_operations",
	"Basic Movement":     "basic_movement",
	"Screen Movement":    "screen_movement",
	"Insert Mode":        "insert_mode",
	"Editing":            "editing",
	"Visual Mode":        "visual_mode",
	"Copy/Paste":         "copy_paste",
	"Search and Replace": "search_replace",
	"Macros":             "macros",
	"Marks and Jumps":    "marks_jumps",
}

// Describer resolves a translated description for a token in a namespace.
// It returns the token itself when no translation exists.
type Describer interface {
	ResolveDescription(namespace, token string) string
}

// LoadOption configures a Catalog.
type LoadOption func(*Catalog)

// WithDescriber localizes descriptions through d.
func WithDescriber(d Describer) LoadOption {
	return func(c *Catalog) { c.describer = d }
}

// WithLogger sets the logger used for load warnings.
func WithLogger(log *zap.Logger) LoadOption {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// WithNamespaces replaces the category to namespace table.
func WithNamespaces(table map[string]string, fallback string) LoadOption {
	return func(c *Catalog) {
		c.namespaces = table
		c.fallbackNS = fallback
	}
}

// Catalog is the loaded corpus. It is read-only after Load.
type Catalog struct {
	groups     []Group
	groupIndex map[string]int
	all        []Question
	warnings   []*SourceError

	describer  Describer
	namespaces map[string]string
	fallbackNS string
	log        *zap.Logger
}

func newCatalog(opts []LoadOption) *Catalog {
	c := &Catalog{
		groupIndex: make(map[string]int),
		namespaces: DefaultNamespaces,
		fallbackNS: FallbackNamespace,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// add merges src into the corpus. A repeated category joins the existing
// group; each question keeps its own source's difficulty.
func (c *Catalog) add(src Source, file string) {
	idx, ok := c.groupIndex[src.Category]
	if !ok {
		idx = len(c.groups)
		c.groupIndex[src.Category] = idx
		c.groups = append(c.groups, Group{Category: src.Category, Difficulty: src.Difficulty})
	} else {
		c.log.Debug("merging duplicate category",
			zap.String("category", src.Category), zap.String("file", file))
	}

	for _, q := range src.Questions {
		q.Difficulty = src.Difficulty
		q.SourceCategory = src.Category
		q.SourceFile = file
		c.groups[idx].Questions = append(c.groups[idx].Questions, q)
		c.all = append(c.all, q)
	}
}

// Localized returns a view of the same corpus that resolves descriptions
// through d instead.
func (c *Catalog) Localized(d Describer) *Catalog {
	view := *c
	view.describer = d
	return &view
}

// Namespace returns the description namespace for a category.
func (c *Catalog) Namespace(category string) string {
	if ns, ok := c.namespaces[category]; ok {
		return ns
	}
	return c.fallbackNS
}

// Localize re-resolves the description of q. The canonical description is
// kept unless a real translation exists.
func (c *Catalog) Localize(q Question) Question {
	if c.describer == nil {
		return q
	}
	d := c.describer.ResolveDescription(c.Namespace(q.SourceCategory), q.Command)
	if d != "" && d != q.Command {
		q.Description = d
	}
	return q
}

func (c *Catalog) localizeAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = c.Localize(q)
	}
	return out
}

// ByCategory returns the questions of one category.
func (c *Catalog) ByCategory(name string) []Question {
	idx, ok := c.groupIndex[name]
	if !ok {
		return nil
	}
	return c.localizeAll(c.groups[idx].Questions)
}

// ByDifficulty returns every question of one tier.
func (c *Catalog) ByDifficulty(d Difficulty) []Question {
	var qs []Question
	for _, q := range c.all {
		if q.Difficulty == d {
			qs = append(qs, q)
		}
	}
	return c.localizeAll(qs)
}

// All returns the whole corpus in load order.
func (c *Catalog) All() []Question {
	return c.localizeAll(c.all)
}

// Filter returns questions matching category and difficulty. An empty
// value or FilterAll matches everything.
func (c *Catalog) Filter(category, difficulty string) []Question {
	return c.localizeAll(c.filter(category, difficulty))
}

func (c *Catalog) filter(category, difficulty string) []Question {
	matchCat := category != "" && category != FilterAll
	matchDiff := difficulty != "" && difficulty != FilterAll

	var qs []Question
	for _, q := range c.all {
		if matchCat && q.SourceCategory != category {
			continue
		}
		if matchDiff && string(q.Difficulty) != difficulty {
			continue
		}
		qs = append(qs, q)
	}
	return qs
}

// RandomSample returns at most count distinct questions drawn uniformly
// from the filtered pool. A smaller pool is returned whole, shuffled.
func (c *Catalog) RandomSample(rng *rand.Rand, count int, category, difficulty string) []Question {
	if count <= 0 {
		return []Question{}
	}
	pool := c.filter(category, difficulty)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > count {
		pool = pool[:count]
	}
	return c.localizeAll(pool)
}

// FindByToken returns the first question whose command is token.
func (c *Catalog) FindByToken(token string) (Question, bool) {
	for _, q := range c.all {
		if q.Command == token {
			return c.Localize(q), true
		}
	}
	return Question{}, false
}

// Tokens returns the distinct commands of the corpus in load order.
func (c *Catalog) Tokens() []string {
	seen := make(map[string]bool, len(c.all))
	tokens := make([]string, 0, len(c.all))
	for _, q := range c.all {
		if !seen[q.Command] {
			seen[q.Command] = true
			tokens = append(tokens, q.Command)
		}
	}
	return tokens
}

// Search matches query case-insensitively against commands and canonical
// descriptions.
func (c *Catalog) Search(query string) []Question {
	query = strings.ToLower(query)
	var qs []Question
	for _, q := range c.all {
		if strings.Contains(strings.ToLower(q.Command), query) ||
			strings.Contains(strings.ToLower(q.Description), query) {
			qs = append(qs, q)
		}
	}
	return c.localizeAll(qs)
}

// Groups returns the loaded categories in load order.
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		g.Questions = c.localizeAll(g.Questions)
		out[i] = g
	}
	return out
}

// Categories returns category labels in load order.
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.groups))
	for i, g := range c.groups {
		names[i] = g.Category
	}
	return names
}

// Difficulties returns the distinct tiers present, easiest first.
func (c *Catalog) Difficulties() []Difficulty {
	var ds []Difficulty
	for _, q := range c.all {
		if !slices.Contains(ds, q.Difficulty) {
			ds = append(ds, q.Difficulty)
		}
	}
	slices.SortFunc(ds, func(a, b Difficulty) int {
		if a.Rank() != b.Rank() {
			return a.Rank() - b.Rank()
		}
		return strings.Compare(string(a), string(b))
	})
	return ds
}

// Statistics summarizes the corpus.
func (c *Catalog) Statistics() Stats {
	st := Stats{
		TotalQuestions:        len(c.all),
		TotalCategories:       len(c.groups),
		QuestionsByCategory:   make(map[string]int, len(c.groups)),
		QuestionsByDifficulty: make(map[string]int),
	}
	for _, g := range c.groups {
		st.QuestionsByCategory[g.Category] = len(g.Questions)
	}
	for _, q := range c.all {
		st.QuestionsByDifficulty[string(q.Difficulty)]++
	}
	st.Categories = c.Categories()
	slices.Sort(st.Categories)
	for _, d := range c.Difficulties() {
		st.Difficulties = append(st.Difficulties, string(d))
	}
	return st
}

// Warnings returns the sources skipped during Load.
func (c *Catalog) Warnings() []*SourceError {
	return slices.Clone(c.warnings)
}
