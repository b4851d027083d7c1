package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/catalog"
	"github.com/abhisek/vimquiz/internal/config"
	"github.com/abhisek/vimquiz/internal/content"
	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/logger"
	"github.com/abhisek/vimquiz/internal/session"
	"github.com/abhisek/vimquiz/internal/store"
)

// depsMode selects how buildDeps sets up logging and storage.
type depsMode int

const (
	// modeCLI logs warnings to stderr and leaves stdout to the command.
	modeCLI depsMode = iota
	// modeTUI logs to a file so the terminal stays clean.
	modeTUI
	// modeServer logs to stderr at the configured level.
	modeServer
)

// deps are the collaborators shared by the commands.
type deps struct {
	cfg     *config.Config
	log     *zap.Logger
	text    *i18n.Store
	catalog *catalog.Catalog
	store   *store.Store // nil when the history is off or not needed
}

// buildDeps loads configuration, translations and questions. The store is
// opened only when withStore is set and --no-history is not.
func buildDeps(cmd *cobra.Command, mode depsMode, withStore bool) (*deps, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	switch mode {
	case modeCLI:
		if !cmd.Flags().Changed("log-level") {
			cfg.Log.Level = "warn"
		}
	case modeTUI:
		if cfg.Log.File == "" {
			if cfg.Log.File, err = logger.DefaultFile(); err != nil {
				return nil, err
			}
		}
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	text := i18n.New(i18n.Options{
		FS:              content.LocalesDir(cfg.Paths.Locales),
		DefaultLanguage: cfg.DefaultLanguage,
		Supported:       cfg.Languages,
		Logger:          log.Named("i18n"),
	})
	lang := cfg.Language
	if lang == config.LanguageAuto {
		lang = text.DetectLanguage()
	}
	if !text.SetActiveLanguage(lang) {
		log.Warn("unsupported language, using default",
			zap.String("language", lang),
			zap.String("default", text.DefaultLanguage()))
	}

	opts := []catalog.LoadOption{
		catalog.WithDescriber(text),
		catalog.WithLogger(log.Named("catalog")),
	}
	var cat *catalog.Catalog
	if cfg.Paths.Questions != "" {
		cat, err = catalog.LoadDir(cfg.Paths.Questions, opts...)
	} else {
		cat, err = catalog.Load(content.Questions(), opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	d := &deps{cfg: cfg, log: log, text: text, catalog: cat}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if withStore && !noHistory {
		if d.store, err = openStore(cfg); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// openStore opens the database named by the config, or the default path.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.Database.Path
	if path != "" {
		if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// results returns the result repository, or nil when the store is closed.
func (d *deps) results() store.ResultRepo {
	if d.store == nil {
		return nil
	}
	return d.store.ResultRepo()
}

// newSession builds a quiz session with the configured limits and filters.
func (d *deps) newSession(opts ...session.Option) *session.Session {
	q := d.cfg.Quiz
	opts = append([]session.Option{session.WithLimits(q.MinLimit, q.MaxLimit)}, opts...)
	s := session.New(d.catalog, opts...)
	s.Configure(q.Category, q.Difficulty, q.Limit)
	return s
}

func (d *deps) Close() {
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			d.log.Warn("close store", zap.Error(err))
		}
	}
	_ = d.log.Sync()
}
