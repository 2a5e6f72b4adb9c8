package main

import (
	"context"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Cortexa-LLC/mcp/src/docxmd/config"
	"github.com/Cortexa-LLC/mcp/src/docxmd/converter"
)

// Server identity constants.
const (
	serverName    = "docxmd"
	serverVersion = "0.1.0"
)

// MCP tool parameter key constants, shared between schema definitions and
// argument extraction.
const (
	argURI          = "uri"
	argFormat       = "format"
	argExportImages = "export_images"
)

func main() {
	s := server.NewMCPServer(serverName, serverVersion)
	conv := converter.NewConverter()
	registerTools(s, conv)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("server error: %v\n", err)
	}
}

// registerTools binds MCP tool definitions to their handlers.
// It accepts the FileConverter interface so tests can inject a mock.
func registerTools(s *server.MCPServer, conv converter.FileConverter) {
	// convert_docx: a document rendered as Markdown or JSON
	s.AddTool(
		mcp.NewTool("convert_docx",
			mcp.WithDescription("Convert a DOCX document (or XLSX, XLS, CSV, PDF, PPTX) to Markdown or JSON. "+
				"Pass an absolute file path, a file:// URI or an http:// / https:// URL."),
			mcp.WithString(argURI,
				mcp.Required(),
				mcp.Description("Absolute file path or file/http/https URI to convert"),
			),
			mcp.WithString(argFormat,
				mcp.Description("Output format: md, json or pretty_json. Defaults to the server configuration."),
				mcp.Enum(config.FormatMarkdown, config.FormatJSON, config.FormatPrettyJSON),
			),
			mcp.WithBoolean(argExportImages,
				mcp.Description("Write embedded images below the configured image directory (Markdown only)"),
			),
		),
		convertHandler(conv, false),
	)

	// convert_to_markdown: any supported file or URL to Markdown
	s.AddTool(
		mcp.NewTool("convert_to_markdown",
			mcp.WithDescription("Convert a file or URL to Markdown. "+
				"Supported formats: DOCX, XLSX, XLS, CSV, PDF, PPTX, HTML, HTM."),
			mcp.WithString(argURI,
				mcp.Required(),
				mcp.Description("Absolute file path or http/https URL to convert"),
			),
		),
		convertHandler(conv, true),
	)

	// get_conversion_info: list formats and configuration
	s.AddTool(
		mcp.NewTool("get_conversion_info",
			mcp.WithDescription("Return supported file formats, output formats, and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(conv.GetConversionInfo(ctx)), nil
		},
	)
}

// convertHandler builds the handler shared by the conversion tools. With
// markdownOnly set the format and export arguments are ignored.
func convertHandler(conv converter.FileConverter, markdownOnly bool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, ok := req.Params.Arguments[argURI].(string)
		if !ok || input == "" {
			return mcp.NewToolResultError(argURI + " is required"), nil
		}

		opts := conv.DefaultOptions()
		if markdownOnly {
			opts.Format = config.FormatMarkdown
			opts.ExportImages = false
		} else {
			if f, ok := req.Params.Arguments[argFormat].(string); ok && f != "" {
				if !config.ValidFormat(f) {
					return mcp.NewToolResultError("unknown format: " + f), nil
				}
				opts.Format = f
			}
			if b, ok := req.Params.Arguments[argExportImages].(bool); ok {
				opts.ExportImages = b
			}
		}

		var result string
		var err error
		if strings.Contains(input, "://") {
			result, err = conv.ConvertURI(ctx, input, opts)
		} else {
			result, err = conv.ConvertFile(ctx, input, opts)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}
