// Package config loads vulnticket's YAML configuration and owns the static
// lookup tables (environment labels, hostname to application map, severity
// ranks) that parameterize the pipeline. Precedence is CLI flags over local
// config over global config.
package config
