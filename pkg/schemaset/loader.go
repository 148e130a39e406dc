package schemaset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"warden-hq/pathwarden/pkg/schema"
)

// LoaderConfig contains configuration for the schema-set loader.
type LoaderConfig struct {
	// MaxFileSize is the largest accepted document size in bytes.
	// Default: 1 MiB
	MaxFileSize int64

	// Extensions are the file extensions considered schema-set documents
	// when loading a directory.
	// Default: .yaml, .yml
	Extensions []string
}

// DefaultLoaderConfig returns the default loader configuration.
func DefaultLoaderConfig() *LoaderConfig {
	return &LoaderConfig{
		MaxFileSize: 1 << 20,
		Extensions:  []string{".yaml", ".yml"},
	}
}

// Loader reads schema-set documents and compiles them into schemas.
type Loader struct {
	config *LoaderConfig
}

// NewLoader creates a loader with the given configuration.
func NewLoader(config *LoaderConfig) *Loader {
	if config == nil {
		config = DefaultLoaderConfig()
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 1 << 20
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".yaml", ".yml"}
	}
	return &Loader{config: config}
}

// LoadFromFile reads and parses a single schema-set document.
func (l *Loader) LoadFromFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{FilePath: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{FilePath: path, Message: "failed to access file", Cause: err}
	}

	if !info.Mode().IsRegular() {
		return nil, &LoadError{FilePath: path, Message: "not a regular file"}
	}

	if info.Size() > l.config.MaxFileSize {
		return nil, &LoadError{
			FilePath: path,
			Message:  fmt.Sprintf("file size %d bytes exceeds maximum %d bytes", info.Size(), l.config.MaxFileSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{FilePath: path, Message: "failed to read file", Cause: err}
	}

	if !utf8.Valid(data) {
		return nil, &LoadError{FilePath: path, Message: "file contains invalid UTF-8 encoding"}
	}

	return l.parse(data, path)
}

// LoadBytes parses a schema-set document from memory. sourcePath is used in
// error messages only.
func (l *Loader) LoadBytes(data []byte, sourcePath string) (*Document, error) {
	return l.parse(data, sourcePath)
}

func (l *Loader) parse(data []byte, path string) (*Document, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{FilePath: path, Cause: err}
	}

	return &doc, nil
}

// Compile turns a parsed document into schemas plus the declared fallback.
// The fallback is nil when the document does not set one.
func (l *Loader) Compile(doc *Document, sourcePath string) ([]*schema.Schema, *schema.Schema, error) {
	fallback, err := compileFallback(doc.Default, sourcePath)
	if err != nil {
		return nil, nil, err
	}

	schemas := make([]*schema.Schema, 0, len(doc.Schemas))
	for i := range doc.Schemas {
		s, err := compileSchema(&doc.Schemas[i], sourcePath)
		if err != nil {
			return nil, nil, err
		}
		schemas = append(schemas, s)
	}

	return schemas, fallback, nil
}

// LoadAll loads every document at path (a file, or a directory scanned
// non-recursively in lexical order) and compiles the combined schema set.
// At most one document may declare a default posture.
func (l *Loader) LoadAll(path string) ([]*schema.Schema, *schema.Schema, error) {
	files, err := l.listFiles(path)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, &LoadError{FilePath: path, Message: "no schema set documents found"}
	}

	var (
		schemas  []*schema.Schema
		fallback *schema.Schema
	)
	for _, file := range files {
		doc, err := l.LoadFromFile(file)
		if err != nil {
			return nil, nil, err
		}

		compiled, docFallback, err := l.Compile(doc, file)
		if err != nil {
			return nil, nil, err
		}

		if docFallback != nil {
			if fallback != nil {
				return nil, nil, &LoadError{
					FilePath: file,
					Message:  "default posture declared by more than one document",
				}
			}
			fallback = docFallback
		}

		schemas = append(schemas, compiled...)
	}

	return schemas, fallback, nil
}

func (l *Loader) listFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{FilePath: path, Message: "path not found", Cause: err}
		}
		return nil, &LoadError{FilePath: path, Message: "failed to access path", Cause: err}
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &LoadError{FilePath: path, Message: "failed to read directory", Cause: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if l.hasValidExtension(filepath.Ext(name)) {
			files = append(files, filepath.Join(path, name))
		}
	}
	sort.Strings(files)

	return files, nil
}

func (l *Loader) hasValidExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, valid := range l.config.Extensions {
		if ext == strings.ToLower(valid) {
			return true
		}
	}
	return false
}

func compileFallback(posture, sourcePath string) (*schema.Schema, error) {
	switch strings.ToLower(strings.TrimSpace(posture)) {
	case "":
		return nil, nil
	case DefaultPermissive:
		return schema.PermissiveDefault(), nil
	case DefaultStrict:
		return schema.StrictDefault(), nil
	default:
		return nil, &LoadError{
			FilePath: sourcePath,
			Message:  fmt.Sprintf("invalid default posture %q (expected permissive or strict)", posture),
		}
	}
}

func compileSchema(def *SchemaDef, sourcePath string) (*schema.Schema, error) {
	var b *schema.Builder
	switch {
	case def.Path != "" && def.Pattern != "":
		return nil, &CompileError{
			FilePath:   sourcePath,
			SchemaName: def.Name,
			Message:    "path and pattern are mutually exclusive",
		}
	case def.Path != "":
		b = schema.BuilderForPath(def.Path)
	case def.Pattern != "":
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			return nil, &CompileError{
				FilePath:   sourcePath,
				SchemaName: def.Name,
				Message:    "invalid pattern",
				Cause:      err,
			}
		}
		b = schema.BuilderForPattern(re)
	default:
		return nil, &CompileError{
			FilePath:   sourcePath,
			SchemaName: def.Name,
			Message:    "either path or pattern is required",
		}
	}

	b.Documentation(def.Documentation)

	if def.Ephemeral != nil {
		b.Ephemeral(*def.Ephemeral)
	}
	if def.Sequential != nil {
		b.Sequential(*def.Sequential)
	}
	if def.Watched != nil {
		b.Watched(*def.Watched)
	}
	if def.CanBeDeleted != nil {
		b.CanBeDeleted(*def.CanBeDeleted)
	}

	validator, err := compileValidator(def)
	if err != nil {
		return nil, &CompileError{
			FilePath:   sourcePath,
			SchemaName: def.Name,
			Message:    "invalid validator",
			Cause:      err,
		}
	}
	b.DataValidator(validator)

	s, err := b.Build()
	if err != nil {
		return nil, &CompileError{
			FilePath:   sourcePath,
			SchemaName: def.Name,
			Message:    "construction failed",
			Cause:      err,
		}
	}

	return s, nil
}

func compileValidator(def *SchemaDef) (schema.DataValidator, error) {
	switch strings.ToLower(strings.TrimSpace(def.Validator)) {
	case "", ValidatorAcceptAll:
		return schema.AcceptAll(), nil
	case ValidatorJSON:
		return schema.JSONData(), nil
	case ValidatorUTF8:
		return schema.UTF8Data(), nil
	case ValidatorRegex:
		if def.ValidatorPattern == "" {
			return nil, fmt.Errorf("validator %q requires validator_pattern", ValidatorRegex)
		}
		re, err := regexp.Compile(def.ValidatorPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid validator_pattern: %w", err)
		}
		return schema.RegexData(re), nil
	default:
		return nil, fmt.Errorf("unknown validator %q", def.Validator)
	}
}
