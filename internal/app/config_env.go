package app

import (
	"os"
	"strconv"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.OutDir == "" {
		cfg.OutDir = os.Getenv("OTAPARSE_OUT_DIR")
	}

	if !cfg.EnablePDF {
		if v, err := strconv.ParseBool(os.Getenv("OTAPARSE_ENABLE_PDF")); err == nil {
			cfg.EnablePDF = v
		}
	}
}
