package schemaset

import (
	"warden-hq/pathwarden/pkg/schema"
)

// Fallback posture names accepted in the document "default" field.
const (
	DefaultPermissive = "permissive"
	DefaultStrict     = "strict"
)

// Validator names accepted in the document "validator" field.
const (
	ValidatorAcceptAll = "accept_all"
	ValidatorJSON      = "json"
	ValidatorUTF8      = "utf8"
	ValidatorRegex     = "regex"
)

// Document is a parsed schema-set file.
type Document struct {
	// Version is the document format version.
	Version int `yaml:"version"`

	// Default selects the registry fallback posture ("permissive" or
	// "strict"). Empty leaves the registry's current fallback in place.
	Default string `yaml:"default"`

	// Schemas are the declared path schemas.
	Schemas []SchemaDef `yaml:"schemas"`
}

// SchemaDef is a single schema declaration. Exactly one of Path and Pattern
// must be set. Pointer fields distinguish "omitted" from an explicit value
// so omissions take the builder defaults.
type SchemaDef struct {
	// Name identifies the schema in error messages. Optional.
	Name string `yaml:"name"`

	// Path binds the schema to one exact node path.
	Path string `yaml:"path"`

	// Pattern binds the schema to every path the regular expression fully
	// matches.
	Pattern string `yaml:"pattern"`

	// Documentation is the required descriptive text.
	Documentation string `yaml:"documentation"`

	// Ephemeral, Sequential, and Watched are the tri-state allowances.
	// Omitted allowances default to can.
	Ephemeral  *schema.Allowance `yaml:"ephemeral"`
	Sequential *schema.Allowance `yaml:"sequential"`
	Watched    *schema.Allowance `yaml:"watched"`

	// CanBeDeleted defaults to true when omitted.
	CanBeDeleted *bool `yaml:"can_be_deleted"`

	// Validator names the data validator ("accept_all", "json", "utf8",
	// "regex"). Omitted defaults to accept_all.
	Validator string `yaml:"validator"`

	// ValidatorPattern is the regular expression for the "regex" validator.
	ValidatorPattern string `yaml:"validator_pattern"`
}
