package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warden-hq/pathwarden/pkg/cli"
	"warden-hq/pathwarden/pkg/schema"
)

var checkFlags struct {
	schemas    string
	path       string
	op         string
	ephemeral  bool
	sequential bool
	watching   bool
	data       string
	dataFile   string
	format     string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate an intended operation against a path",
	Long: `Load a schema set and evaluate whether an intended operation on a path
would be permitted. Exits 0 when allowed and ` + fmt.Sprint(cli.ExitViolation) + ` on a schema violation.

Examples:
  # May I create an ephemeral node here?
  pathwarden check --schemas schemas/ --op create --path /locks/lease-1 --ephemeral

  # May I delete this node?
  pathwarden check --schemas schemas/ --op delete --path /app/config

  # Would this payload be accepted?
  pathwarden check --schemas schemas/ --op set-data --path /app/config --data '{"k":1}'

  # May I stop watching this node?
  pathwarden check --schemas schemas/ --op watch --path /members/m1`,
	RunE: checkOperation,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.schemas, "schemas", "s", "", "schema set file or directory (required)")
	checkCmd.Flags().StringVarP(&checkFlags.path, "path", "p", "", "node path to evaluate (required)")
	checkCmd.Flags().StringVar(&checkFlags.op, "op", "", "operation: create, delete, watch, set-data (required)")
	checkCmd.Flags().BoolVar(&checkFlags.ephemeral, "ephemeral", false, "create: node would be ephemeral")
	checkCmd.Flags().BoolVar(&checkFlags.sequential, "sequential", false, "create: node would be sequential")
	checkCmd.Flags().BoolVar(&checkFlags.watching, "watching", true, "watch: true to set a watch, false to remove one")
	checkCmd.Flags().StringVar(&checkFlags.data, "data", "", "create/set-data: payload")
	checkCmd.Flags().StringVar(&checkFlags.dataFile, "data-file", "", "create/set-data: read payload from file")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")

	_ = checkCmd.MarkFlagRequired("schemas")
	_ = checkCmd.MarkFlagRequired("path")
	_ = checkCmd.MarkFlagRequired("op")
}

// CheckResult is the evaluation outcome for one operation.
type CheckResult struct {
	Path      string `json:"path"`
	Operation string `json:"operation"`
	Schema    string `json:"schema"`
	Match     string `json:"match"`
	Allowed   bool   `json:"allowed"`
	Reason    string `json:"reason,omitempty"`
}

func checkOperation(cmd *cobra.Command, args []string) error {
	data, err := checkPayload()
	if err != nil {
		return err
	}

	reg, err := loadRegistry(checkFlags.schemas)
	if err != nil {
		return err
	}

	s, match := reg.LookupWithMatch(checkFlags.path)

	var violation error
	switch checkFlags.op {
	case "create":
		violation = s.ValidateCreate(checkFlags.ephemeral, checkFlags.sequential, data)
	case "delete":
		violation = s.ValidateDeletion()
	case "watch":
		violation = s.ValidateWatcher(checkFlags.watching)
	case "set-data":
		violation = s.ValidateData(data)
	default:
		return fmt.Errorf("invalid --op %q (expected create, delete, watch, or set-data)", checkFlags.op)
	}

	result := CheckResult{
		Path:      checkFlags.path,
		Operation: checkFlags.op,
		Schema:    s.RawPath(),
		Match:     match.String(),
		Allowed:   violation == nil,
	}

	var v *schema.Violation
	if errors.As(violation, &v) {
		result.Reason = v.Reason
	} else if violation != nil {
		result.Reason = violation.Error()
	}

	out := cmd.OutOrStdout()
	if checkFlags.format == "json" {
		if err := cli.NewFormatter(cli.FormatJSON).FormatTo(out, result); err != nil {
			return err
		}
	} else {
		if result.Allowed {
			fmt.Fprintf(out, "✓ %s on %s allowed (schema %s, %s match)\n",
				result.Operation, result.Path, result.Schema, result.Match)
		} else {
			fmt.Fprintf(out, "✗ %s on %s denied: %s (schema %s, %s match)\n",
				result.Operation, result.Path, result.Reason, result.Schema, result.Match)
		}
	}

	if violation != nil {
		return cli.NewExitError(cli.ExitViolation, violation)
	}
	return nil
}

func checkPayload() ([]byte, error) {
	if checkFlags.data != "" && checkFlags.dataFile != "" {
		return nil, fmt.Errorf("--data and --data-file are mutually exclusive")
	}
	if checkFlags.dataFile != "" {
		data, err := os.ReadFile(checkFlags.dataFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
		return data, nil
	}
	return []byte(checkFlags.data), nil
}
