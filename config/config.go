package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// EnvMaxFileBytes is the environment variable name for the file size limit.
	EnvMaxFileBytes = "DOCXMD_MAX_FILE_BYTES"

	// EnvExportImages enables writing embedded images next to Markdown output.
	EnvExportImages = "DOCXMD_EXPORT_IMAGES"

	// EnvImageDir is the root directory for exported images.
	EnvImageDir = "DOCXMD_IMAGE_DIR"

	// EnvFormat selects the default output format.
	EnvFormat = "DOCXMD_FORMAT"

	// DefaultMaxFileBytes is the default maximum accepted file size (50 MiB).
	DefaultMaxFileBytes int64 = 50 << 20
)

// Output formats.
const (
	FormatMarkdown   = "md"
	FormatJSON       = "json"
	FormatPrettyJSON = "pretty_json"
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	MaxFileSizeBytes int64
	ExportImages     bool
	// ImageDir is empty for the working directory.
	ImageDir string
	Format   string
}

// MaxFileSizeMB returns the configured limit in whole megabytes.
func (c *Config) MaxFileSizeMB() int64 {
	return c.MaxFileSizeBytes >> 20
}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatMarkdown, FormatJSON, FormatPrettyJSON:
		return true
	}
	return false
}

// Load reads Config from environment variables, falling back to defaults for
// missing or invalid values.
func Load() *Config {
	cfg := &Config{
		MaxFileSizeBytes: DefaultMaxFileBytes,
		Format:           FormatMarkdown,
	}
	if v := os.Getenv(EnvMaxFileBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxFileSizeBytes = n
		}
	}
	if v := os.Getenv(EnvExportImages); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ExportImages = b
		}
	}
	cfg.ImageDir = os.Getenv(EnvImageDir)
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvFormat))); ValidFormat(v) {
		cfg.Format = v
	}
	return cfg
}
