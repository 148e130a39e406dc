// Pathwarden validates coordination-namespace operations against declarative
// path schemas.
//
// It loads schema-set documents that bind path selectors (exact paths or
// full-match regular expressions) to policies over ephemeral, sequential,
// and watch semantics, data payloads, and deletion, and evaluates intended
// operations against them.
//
// Usage:
//
//	# Validate schema-set files
//	pathwarden lint --file schemas.yaml
//
//	# Render the documentation listing for a schema set
//	pathwarden docs --schemas schemas/
//
//	# Evaluate an intended operation against a path
//	pathwarden check --schemas schemas/ --op create --path /locks/lease-1 --ephemeral
//
//	# Keep validating as documents change, exposing Prometheus metrics
//	pathwarden watch --schemas schemas/ --listen :9464
//
//	# Show version information
//	pathwarden version
package main

func main() {
	Execute()
}
