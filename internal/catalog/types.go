package catalog

// Difficulty is a question tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// DefaultCategory labels a source that declares no category.
const DefaultCategory = "Unknown"

// AllDifficulties returns every tier in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// Rank orders tiers: beginner < intermediate < advanced. Unknown values
// sort after every known tier.
func (d Difficulty) Rank() int {
	switch d {
	case Beginner:
		return 0
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 3
	}
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d.Rank() < 3
}

// ParseDifficulty maps a label to a tier. The empty string and "all" are
// not tiers and return false.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(s)
	return d, d.Valid()
}

// Option is one answer option as stored in a source file.
type Option struct {
	Text        string `json:"text"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// Question is one vocabulary command with its description.
//
// Command is the scoring token. Options are carried verbatim so sources
// round-trip; the quiz never scores against their Correct flags.
type Question struct {
	Command     string   `json:"command"`
	Description string   `json:"description"`
	Explanation string   `json:"explanation"`
	Options     []Option `json:"options"`

	// Set when the question is flattened into the corpus.
	Difficulty     Difficulty `json:"-"`
	SourceCategory string     `json:"-"`
	SourceFile     string     `json:"-"`
}

// Token returns the canonical correct answer.
func (q Question) Token() string {
	return q.Command
}

// MarkedCorrect returns the options flagged correct in the source.
func (q Question) MarkedCorrect() []Option {
	var out []Option
	for _, o := range q.Options {
		if o.Correct {
			out = append(out, o)
		}
	}
	return out
}

// Source is the on-disk shape of one content file.
type Source struct {
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Questions  []Question `json:"questions"`
}

// Group is a loaded category: its label, shared tier and questions.
type Group struct {
	Category   string
	Difficulty Difficulty
	Questions  []Question
}

// Stats summarizes a catalog.
type Stats struct {
	TotalQuestions        int            `json:"total_questions"`
	TotalCategories       int            `json:"total_categories"`
	QuestionsByCategory   map[string]int `json:"questions_by_category"`
	QuestionsByDifficulty map[string]int `json:"questions_by_difficulty"`
	Categories            []string       `json:"categories"`
	Difficulties          []string       `json:"difficulties"`
}
