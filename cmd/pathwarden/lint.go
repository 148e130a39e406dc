package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"warden-hq/pathwarden/pkg/cli"
	"warden-hq/pathwarden/pkg/schemaset"
)

var lintFlags struct {
	file   string
	dir    string
	strict bool
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate schema-set files",
	Long: `Validate schema-set files for syntax and semantic errors.

The lint command parses schema-set documents and performs full validation:
  - YAML syntax validation (unknown fields rejected)
  - Selector validation (exactly one of path or pattern, pattern compiles)
  - Allowance and validator validation
  - Documentation presence

Examples:
  # Lint single file
  pathwarden lint --file schemas.yaml

  # Lint directory
  pathwarden lint --dir schemas/

  # Strict mode (warnings as errors)
  pathwarden lint --file schemas.yaml --strict

  # JSON output for CI/CD
  pathwarden lint --file schemas.yaml --format json`,
	RunE: lintSchemaSets,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "schema set file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of schema set files")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

func lintSchemaSets(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(lintFlags.dir, pattern))
			if err != nil {
				return fmt.Errorf("failed to list schema set files: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no schema set files found")
	}

	results := make([]LintResult, 0, len(files))
	for _, file := range files {
		results = append(results, lintFile(file))
	}

	if lintFlags.format == "json" {
		if err := cli.NewFormatter(cli.FormatJSON).FormatTo(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		return lintVerdict(results)
	}
	return lintText(cmd, results)
}

// LintResult is the validation outcome for a single schema-set file.
type LintResult struct {
	File     string      `json:"file"`
	Valid    bool        `json:"valid"`
	Schemas  int         `json:"schemas"`
	Errors   []LintIssue `json:"errors,omitempty"`
	Warnings []LintIssue `json:"warnings,omitempty"`
}

// LintIssue is a single validation error or warning.
type LintIssue struct {
	Schema   string `json:"schema,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func lintFile(path string) LintResult {
	result := LintResult{
		File:  path,
		Valid: true,
	}

	loader := schemaset.NewLoader(nil)

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, lintIssue(err))
		return result
	}

	schemas, _, err := loader.Compile(doc, path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, lintIssue(err))
		return result
	}
	result.Schemas = len(schemas)

	// A schema that shadows nothing and documents nothing useful is legal
	// but worth flagging in strict CI runs.
	for i := range doc.Schemas {
		def := &doc.Schemas[i]
		if def.Name == "" {
			result.Warnings = append(result.Warnings, LintIssue{
				Message:  fmt.Sprintf("schema %d has no name", i),
				Severity: "warning",
			})
		}
	}

	return result
}

func lintIssue(err error) LintIssue {
	issue := LintIssue{
		Message:  err.Error(),
		Severity: "error",
	}

	var compileErr *schemaset.CompileError
	if errors.As(err, &compileErr) {
		issue.Schema = compileErr.SchemaName
	}

	return issue
}

func lintText(cmd *cobra.Command, results []LintResult) error {
	out := cmd.OutOrStdout()
	totalErrors := 0
	totalWarnings := 0

	for _, result := range results {
		fmt.Fprintf(out, "Validating %s...\n", result.File)

		if result.Valid && len(result.Warnings) == 0 {
			fmt.Fprintf(out, "✓ %d schema(s) valid\n", result.Schemas)
		}

		for _, issue := range result.Errors {
			fmt.Fprintf(out, "✗ Error: %s\n", issue.Message)
			totalErrors++
		}
		for _, issue := range result.Warnings {
			fmt.Fprintf(out, "⚠  Warning: %s\n", issue.Message)
			totalWarnings++
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  %d error(s), %d warning(s)\n", totalErrors, totalWarnings)

	if lintFlags.strict && totalWarnings > 0 {
		fmt.Fprintln(out, "  Strict mode enabled: treating warnings as errors")
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}
	if totalErrors > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}
	return nil
}

func lintVerdict(results []LintResult) error {
	for _, result := range results {
		if !result.Valid {
			return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
		}
		if lintFlags.strict && len(result.Warnings) > 0 {
			return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
		}
	}
	return nil
}
