package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"warden-hq/pathwarden/pkg/registry"
	"warden-hq/pathwarden/pkg/schema"
	"warden-hq/pathwarden/pkg/schemaset"
)

var docsFlags struct {
	schemas string
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the documentation listing for a schema set",
	Long: `Load a schema set and print the human-readable documentation listing:
every schema's selector, documentation, validator, and policy, in
deterministic order, ending with the default schema.

Examples:
  pathwarden docs --schemas schemas.yaml
  pathwarden docs --schemas schemas/`,
	RunE: renderDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringVarP(&docsFlags.schemas, "schemas", "s", "", "schema set file or directory (required)")
	_ = docsCmd.MarkFlagRequired("schemas")
}

func renderDocs(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(docsFlags.schemas)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), reg.ToDocumentation())
	return nil
}

// loadRegistry loads the schema set at path into a fresh registry with a
// permissive fallback (overridden by the document's declared posture).
func loadRegistry(path string) (*registry.Registry, error) {
	logger := cliLogger()
	reg := registry.New(schema.PermissiveDefault(), logger)

	mgr, err := schemaset.NewManager(schemaset.DefaultManagerConfig(path), reg, logger)
	if err != nil {
		return nil, err
	}
	if err := mgr.LoadSchemas(); err != nil {
		return nil, err
	}

	return reg, nil
}
