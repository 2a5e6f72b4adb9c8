// Command docxmd converts a DOCX document to Markdown or JSON.
//
//	docxmd [-o output] [-f md|json|pretty_json] [-images] [-image-dir dir] input[.docx]
//
// An input whose extension is not a supported format gets .docx appended,
// so "report.v2" reads report.v2.docx.
//
// Without -o the result is written to standard output. Defaults come from
// the DOCXMD_* environment variables, optionally loaded from a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Cortexa-LLC/mcp/src/docxmd/config"
	"github.com/Cortexa-LLC/mcp/src/docxmd/converter"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env file: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(context.Background(), config.Load(), os.Args[1:], os.Stdout, logger); err != nil {
		log.Fatalf("docxmd: %v", err)
	}
}

// run parses args, converts the input and writes the result to the -o file
// or to stdout.
func run(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer, logger *slog.Logger) error {
	fset := flag.NewFlagSet("docxmd", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	output := fset.String("o", "", "output file (default: standard output)")
	format := fset.String("f", cfg.Format, "output format: md, json or pretty_json")
	exportImages := fset.Bool("images", cfg.ExportImages, "export embedded images (Markdown only)")
	imageDir := fset.String("image-dir", cfg.ImageDir, "directory for exported images")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if fset.NArg() != 1 {
		return errors.New("usage: docxmd [-o output] [-f md|json|pretty_json] [-images] [-image-dir dir] input")
	}
	if !config.ValidFormat(*format) {
		return fmt.Errorf("unknown format %q (expected md, json or pretty_json)", *format)
	}

	// "report" and "report.v2" both mean a .docx file; known extensions
	// such as .xlsx are kept.
	conv := converter.NewConverterWithConfig(cfg)
	input := fset.Arg(0)
	if !conv.CanConvert(input) {
		input += ".docx"
	}

	out, err := conv.ConvertFile(ctx, input, converter.Options{
		Format:       *format,
		ExportImages: *exportImages,
		ImageDir:     *imageDir,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	if *output == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}
	logger.Info("converted", "input", input, "output", *output, "format", *format)
	return nil
}
