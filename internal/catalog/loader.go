package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

// ErrNoContent is returned when no usable question source could be loaded.
var ErrNoContent = errors.New("no usable question sources")

// SourceError records a content file that was skipped during loading.
type SourceError struct {
	File string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

//go:embed source.schema.json
var sourceSchemaJSON []byte

const sourceSchemaURL = "schema://question-source.json"

var compileSourceSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(sourceSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse source schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(sourceSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(sourceSchemaURL)
})

// LoadDir loads every source in dir. A missing directory yields ErrNoContent.
func LoadDir(dir string, opts ...LoadOption) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("questions directory %s: %w: %v", dir, ErrNoContent, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("questions directory %s: %w: not a directory", dir, ErrNoContent)
	}
	return Load(os.DirFS(dir), opts...)
}

// Load reads every *.json file at the root of fsys, in name order. A file
// that cannot be read, parsed or validated is skipped and recorded in
// Warnings. Zero usable sources yields ErrNoContent.
func Load(fsys fs.FS, opts ...LoadOption) (*Catalog, error) {
	c := newCatalog(opts)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list question sources: %w: %v", ErrNoContent, err)
	}

	sources := 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".json") {
			continue
		}
		src, err := readSource(fsys, e.Name())
		if err != nil {
			serr := &SourceError{File: e.Name(), Err: err}
			c.warnings = append(c.warnings, serr)
			c.log.Warn("skipping question source", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		c.add(src, e.Name())
		sources++
	}

	if sources == 0 {
		return nil, ErrNoContent
	}
	c.log.Info("questions loaded",
		zap.Int("questions", len(c.all)),
		zap.Int("categories", len(c.groups)),
		zap.Int("skipped", len(c.warnings)))
	return c, nil
}

// readSource reads, validates and decodes one content file.
func readSource(fsys fs.FS, name string) (Source, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Source{}, fmt.Errorf("read: %w", err)
	}
	if err := ValidateSource(data); err != nil {
		return Source{}, err
	}

	var src Source
	if err := json.Unmarshal(data, &src); err != nil {
		return Source{}, fmt.Errorf("decode: %w", err)
	}
	if src.Category == "" {
		src.Category = DefaultCategory
	}
	if src.Difficulty == "" {
		src.Difficulty = Beginner
	}
	return src, nil
}

// ValidateSource checks raw content against the source schema.
func ValidateSource(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compileSourceSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
