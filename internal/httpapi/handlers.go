package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/vimquiz/internal/catalog"
	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/session"
	"github.com/abhisek/vimquiz/internal/store"
)

// langDescriber resolves descriptions in a fixed language without moving
// the store's active-language cursor.
type langDescriber struct {
	store *i18n.Store
	lang  string
}

func (d langDescriber) ResolveDescription(namespace, token string) string {
	return d.store.ResolveDescriptionIn(d.lang, namespace, token)
}

// lang returns the ?lang= value when supported, the active language otherwise.
func (s *server) lang(r *http.Request) string {
	if l := r.URL.Query().Get("lang"); l != "" && s.Translations.IsSupported(l) {
		return l
	}
	return s.Translations.ActiveLanguage()
}

func (s *server) catalogFor(lang string) *catalog.Catalog {
	return s.Catalog.Localized(langDescriber{store: s.Translations, lang: lang})
}

type questionDTO struct {
	Command     string           `json:"command"`
	Description string           `json:"description"`
	Explanation string           `json:"explanation"`
	Category    string           `json:"category"`
	Difficulty  string           `json:"difficulty"`
	Options     []catalog.Option `json:"options"`
}

func toQuestionDTO(q catalog.Question) questionDTO {
	opts := q.Options
	if opts == nil {
		opts = []catalog.Option{}
	}
	return questionDTO{
		Command:     q.Command,
		Description: q.Description,
		Explanation: q.Explanation,
		Category:    q.SourceCategory,
		Difficulty:  string(q.Difficulty),
		Options:     opts,
	}
}

func toQuestionDTOs(qs []catalog.Question) []questionDTO {
	out := make([]questionDTO, len(qs))
	for i, q := range qs {
		out[i] = toQuestionDTO(q)
	}
	return out
}

func (s *server) languages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Translations.Info())
}

func (s *server) stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Catalog.Statistics())
}

type categoryDTO struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Namespace   string `json:"namespace"`
	Difficulty  string `json:"difficulty"`
	Questions   int    `json:"questions"`
}

func (s *server) categories(w http.ResponseWriter, r *http.Request) {
	lang := s.lang(r)
	groups := s.Catalog.Groups()
	out := make([]categoryDTO, 0, len(groups))
	for _, g := range groups {
		ns := s.Catalog.Namespace(g.Category)
		display := s.Translations.ResolveIn(lang, "questions.categories."+ns, nil)
		if display == "questions.categories."+ns {
			display = g.Category
		}
		out = append(out, categoryDTO{
			Name:        g.Category,
			DisplayName: display,
			Namespace:   ns,
			Difficulty:  string(g.Difficulty),
			Questions:   len(g.Questions),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *server) questions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cat := s.catalogFor(s.lang(r))
	category, difficulty := q.Get("category"), q.Get("difficulty")

	if n, ok := parseCount(q.Get("count")); ok {
		respondJSON(w, http.StatusOK, toQuestionDTOs(cat.RandomSample(s.rand(), n, category, difficulty)))
		return
	}
	if search := strings.TrimSpace(q.Get("q")); search != "" {
		respondJSON(w, http.StatusOK, toQuestionDTOs(cat.Search(search)))
		return
	}
	respondJSON(w, http.StatusOK, toQuestionDTOs(cat.Filter(category, difficulty)))
}

func (s *server) question(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if t, err := url.PathUnescape(token); err == nil {
		token = t
	}
	q, ok := s.catalogFor(s.lang(r)).FindByToken(token)
	if !ok {
		respondError(w, http.StatusNotFound, "question not found")
		return
	}
	respondJSON(w, http.StatusOK, toQuestionDTO(q))
}

type textDTO struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// text resolves a translation key. Query parameters other than lang are
// substituted into the template.
func (s *server) text(w http.ResponseWriter, r *http.Request) {
	lang := s.lang(r)
	key := chi.URLParam(r, "key")

	var params i18n.Params
	for name, vals := range r.URL.Query() {
		if name == "lang" || len(vals) == 0 {
			continue
		}
		if params == nil {
			params = i18n.Params{}
		}
		params[name] = i18n.ParseParam(vals[0])
	}

	respondJSON(w, http.StatusOK, textDTO{
		Key:      key,
		Language: lang,
		Text:     s.Translations.ResolveIn(lang, key, params),
	})
}

type quizItemDTO struct {
	Ordinal     int      `json:"question"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
}

type quizDTO struct {
	Language   string        `json:"language"`
	Category   string        `json:"category"`
	Difficulty string        `json:"difficulty"`
	Limit      int           `json:"limit"`
	Questions  []quizItemDTO `json:"questions"`
}

// quiz samples a ready-to-render run: every question with its option set.
func (s *server) quiz(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := s.lang(r)
	rng := s.rand()

	opts := []session.Option{session.WithRand(rng)}
	if s.MinLimit > 0 && s.MaxLimit > 0 {
		opts = append(opts, session.WithLimits(s.MinLimit, s.MaxLimit))
	}
	sess := session.New(s.catalogFor(lang), opts...)

	limit := session.DefaultLimit
	if n, ok := parseCount(q.Get("count")); ok {
		limit = n
	}
	settings := sess.Configure(q.Get("category"), q.Get("difficulty"), limit)
	sess.Start()

	out := quizDTO{
		Language:   lang,
		Category:   settings.Category,
		Difficulty: settings.Difficulty,
		Limit:      settings.Limit,
		Questions:  []quizItemDTO{},
	}
	for sess.Phase() != session.PhaseCompleted {
		p, err := sess.CurrentQuestion()
		if err != nil {
			break
		}
		out.Questions = append(out.Questions, quizItemDTO{
			Ordinal:     p.Ordinal,
			Description: p.Description,
			Category:    p.Category,
			Difficulty:  string(p.Difficulty),
			Options:     p.Options,
			Correct:     p.Command,
		})
		if _, err := sess.SubmitAnswer(p.Command); err != nil {
			break
		}
		if err := sess.Advance(); err != nil {
			break
		}
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *server) results(w http.ResponseWriter, r *http.Request) {
	if s.Results == nil {
		respondError(w, http.StatusNotFound, "result history disabled")
		return
	}
	limit := 20
	if n, ok := parseCount(r.URL.Query().Get("limit")); ok {
		limit = n
	}
	res, err := s.Results.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res == nil {
		res = []store.Result{}
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *server) result(w http.ResponseWriter, r *http.Request) {
	if s.Results == nil {
		respondError(w, http.StatusNotFound, "result history disabled")
		return
	}
	res, err := s.Results.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res == nil {
		respondError(w, http.StatusNotFound, "result not found")
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *server) totals(w http.ResponseWriter, r *http.Request) {
	if s.Results == nil {
		respondError(w, http.StatusNotFound, "result history disabled")
		return
	}
	t, err := s.Results.Totals(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
