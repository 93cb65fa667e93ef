package vulnticket

import (
	"path/filepath"

	"github.com/vulnticket/vulnticket/internal/config"
)

// loadConfig resolves configuration with CLI > local > global precedence.
// The local config is searched next to the input file.
func loadConfig(inputPath string) config.FileConfig {
	var merged config.FileConfig
	if flagConfig != "" {
		if c, err := config.LoadFile(flagConfig); err == nil {
			merged = config.Merge(merged, c)
		}
	}
	if inputPath != "" {
		if c, err := config.LoadLocal(filepath.Dir(inputPath)); err == nil {
			merged = config.Merge(merged, c)
		}
	}
	if c, err := config.LoadGlobal(); err == nil {
		merged = config.Merge(merged, c)
	}
	return merged
}

func pickBool(cli bool, file *bool) bool {
	if cli {
		return true
	}
	if file != nil {
		return *file
	}
	return false
}

// orDefault returns the flag value, then the config pointer, then a default.
func orDefault(cli string, file *string, def string) string {
	if cli != "" {
		return cli
	}
	if file != nil && *file != "" {
		return *file
	}
	return def
}
