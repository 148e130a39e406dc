/*
Package config loads pathwarden configuration from YAML files.

Configuration drives the long-running watch mode: where the schema-set
documents live, how reloads are debounced, whether metrics are exposed,
and how logs are emitted.

Example configuration file:

	schemas:
	  path: schemas/
	  debounce_interval: 100ms
	  max_file_size: 1048576

	metrics:
	  enabled: true
	  listen: ":9464"
	  namespace: pathwarden

	logging:
	  level: info
	  format: text

Loading applies defaults, then optional PATHWARDEN_* environment variable
overrides, then validates:

	cfg, err := config.LoadConfigWithEnvOverrides("pathwarden.yaml")
	if err != nil {
		log.Fatal(err)
	}

Environment overrides follow the naming convention PATHWARDEN_SECTION_FIELD,
for example PATHWARDEN_SCHEMAS_PATH or PATHWARDEN_METRICS_LISTEN, and always
take precedence over file values.
*/
package config
