package main

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Cortexa-LLC/mcp/src/docxmd/config"
	"github.com/Cortexa-LLC/mcp/src/docxmd/converter"
)

// fakeConverter records the last call and returns a canned result.
type fakeConverter struct {
	defaults converter.Options
	result   string
	err      error

	lastMethod string
	lastInput  string
	lastOpts   converter.Options
}

func (f *fakeConverter) ConvertFile(_ context.Context, path string, opts converter.Options) (string, error) {
	f.lastMethod, f.lastInput, f.lastOpts = "file", path, opts
	return f.result, f.err
}

func (f *fakeConverter) ConvertURI(_ context.Context, uri string, opts converter.Options) (string, error) {
	f.lastMethod, f.lastInput, f.lastOpts = "uri", uri, opts
	return f.result, f.err
}

func (f *fakeConverter) GetConversionInfo(context.Context) string { return "info" }

func (f *fakeConverter) DefaultOptions() converter.Options { return f.defaults }

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("unexpected content type %T", res.Content[0])
		return ""
	}
}

func TestConvertHandler_MissingURI(t *testing.T) {
	conv := &fakeConverter{}
	res, err := convertHandler(conv, false)(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected an error result")
	}
	if conv.lastMethod != "" {
		t.Error("converter should not be called")
	}
}

func TestConvertHandler_FileWithOptions(t *testing.T) {
	conv := &fakeConverter{
		defaults: converter.Options{Format: config.FormatMarkdown},
		result:   `{"content":[]}`,
	}
	res, err := convertHandler(conv, false)(context.Background(), callRequest(map[string]interface{}{
		argURI:          "/tmp/report.docx",
		argFormat:       config.FormatJSON,
		argExportImages: true,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if conv.lastMethod != "file" || conv.lastInput != "/tmp/report.docx" {
		t.Errorf("called %s(%s), want file(/tmp/report.docx)", conv.lastMethod, conv.lastInput)
	}
	if conv.lastOpts.Format != config.FormatJSON || !conv.lastOpts.ExportImages {
		t.Errorf("opts = %+v", conv.lastOpts)
	}
	if got := resultText(t, res); got != `{"content":[]}` {
		t.Errorf("result = %q", got)
	}
}

func TestConvertHandler_InvalidFormat(t *testing.T) {
	conv := &fakeConverter{}
	res, _ := convertHandler(conv, false)(context.Background(), callRequest(map[string]interface{}{
		argURI:    "/tmp/report.docx",
		argFormat: "yaml",
	}))
	if !res.IsError {
		t.Error("expected an error result for an unknown format")
	}
}

func TestConvertHandler_URIRoutesToConvertURI(t *testing.T) {
	conv := &fakeConverter{result: "ok"}
	_, _ = convertHandler(conv, false)(context.Background(), callRequest(map[string]interface{}{
		argURI: "https://example.com/a.docx",
	}))
	if conv.lastMethod != "uri" {
		t.Errorf("lastMethod = %q, want uri", conv.lastMethod)
	}
}

func TestConvertHandler_MarkdownOnlyIgnoresFormat(t *testing.T) {
	conv := &fakeConverter{defaults: converter.Options{Format: config.FormatJSON, ExportImages: true}}
	_, _ = convertHandler(conv, true)(context.Background(), callRequest(map[string]interface{}{
		argURI:    "/tmp/a.docx",
		argFormat: config.FormatPrettyJSON,
	}))
	if conv.lastOpts.Format != config.FormatMarkdown || conv.lastOpts.ExportImages {
		t.Errorf("opts = %+v, want markdown without export", conv.lastOpts)
	}
}

func TestConvertHandler_ConversionErrorIsToolError(t *testing.T) {
	conv := &fakeConverter{err: errors.New("boom")}
	res, err := convertHandler(conv, false)(context.Background(), callRequest(map[string]interface{}{
		argURI: "/tmp/a.docx",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError || resultText(t, res) != "boom" {
		t.Errorf("expected tool error carrying the message")
	}
}
