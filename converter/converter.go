package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/config"
)

// ErrUnsupportedFormat is returned for inputs no converter handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Options controls one conversion.
type Options struct {
	// Format is one of config.FormatMarkdown, FormatJSON or FormatPrettyJSON.
	Format string
	// ExportImages writes embedded images below ImageDir (Markdown only).
	ExportImages bool
	ImageDir     string
	Logger       *slog.Logger
}

// FileConverter is the conversion surface exposed to the MCP server and CLI.
type FileConverter interface {
	ConvertFile(ctx context.Context, filePath string, opts Options) (string, error)
	ConvertURI(ctx context.Context, uri string, opts Options) (string, error)
	GetConversionInfo(ctx context.Context) string
	DefaultOptions() Options
}

// Converter routes all conversions through the native Go backend.
// HTTP/HTTPS URIs are downloaded and converted by extension.
// file:// URIs are resolved to local paths.
type Converter struct {
	native *formatConverter
	cfg    *config.Config
	client *http.Client
}

// NewConverter creates a Converter using environment-driven config.
func NewConverter() *Converter {
	return NewConverterWithConfig(config.Load())
}

// NewConverterWithConfig creates a Converter with an explicit config.
func NewConverterWithConfig(cfg *config.Config) *Converter {
	return &Converter{
		native: newFormatConverter(),
		cfg:    cfg,
		client: http.DefaultClient,
	}
}

// DefaultOptions returns the options implied by the configuration.
func (c *Converter) DefaultOptions() Options {
	return Options{
		Format:       c.cfg.Format,
		ExportImages: c.cfg.ExportImages,
		ImageDir:     c.cfg.ImageDir,
	}
}

// CanConvert reports whether the extension of filePath is a known format.
func (c *Converter) CanConvert(filePath string) bool {
	return c.native.CanConvert(filePath)
}

// ConvertFile converts a local file to Markdown or JSON.
func (c *Converter) ConvertFile(_ context.Context, filePath string, opts Options) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", filePath)
	}
	if info.Size() > c.cfg.MaxFileSizeBytes {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), c.cfg.MaxFileSizeBytes)
	}
	if !c.native.CanConvert(filePath) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
	if opts.Format == "" {
		opts.Format = config.FormatMarkdown
	}
	if !config.ValidFormat(opts.Format) {
		return "", fmt.Errorf("unknown output format %q (expected md, json or pretty_json)", opts.Format)
	}
	return c.native.ConvertFile(filePath, opts)
}

// ConvertURI converts a URI.
// Supported schemes: file://, http://, https://
func (c *Converter) ConvertURI(ctx context.Context, uri string, opts Options) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %s", uri)
	}

	switch u.Scheme {
	case "file":
		return c.ConvertFile(ctx, u.Path, opts)
	case "http", "https":
		return c.convertURL(ctx, u, opts)
	default:
		return "", fmt.Errorf("unsupported URI scheme: %q (expected file, http, or https)", u.Scheme)
	}
}

// convertURL downloads u into a temporary file named after the URL's
// extension, HTML when it has none, and converts that file.
func (c *Converter) convertURL(ctx context.Context, u *url.URL, opts Options) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", u, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, u)
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" || strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		ext = ".html"
	}
	tmp, err := os.CreateTemp("", "docxmd-download-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	_, copyErr := io.Copy(tmp, io.LimitReader(resp.Body, c.cfg.MaxFileSizeBytes+1))
	if err := tmp.Close(); err != nil && copyErr == nil {
		copyErr = err
	}
	if copyErr != nil {
		return "", fmt.Errorf("read response: %w", copyErr)
	}
	return c.ConvertFile(ctx, tmpPath, opts)
}

// GetConversionInfo returns a Markdown summary of supported formats and config.
func (c *Converter) GetConversionInfo(_ context.Context) string {
	fmts := c.native.SupportedFormats()
	sort.Strings(fmts)

	imageDir := c.cfg.ImageDir
	if imageDir == "" {
		imageDir = "working directory"
	}

	return fmt.Sprintf(`# docxmd Conversion Info

## Supported Formats (native Go)
%s

## Output Formats
- md
- json
- pretty_json

## Configuration
- Max file size: %d MB
- Default output format: %s
- Export images: %t (into %s)`,
		"- "+strings.Join(fmts, "\n- "),
		c.cfg.MaxFileSizeMB(),
		c.cfg.Format,
		c.cfg.ExportImages,
		imageDir,
	)
}
