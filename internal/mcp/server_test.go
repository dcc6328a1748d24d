package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/catalog"
)

func readyServer() *Server {
	h := app.NewCatalogHolder()
	h.Set(catalog.Normalize(
		catalog.MoviesPayload{Title: []string{"Alpha", "Gamma"}},
		catalog.SeriesPayload{Series: []string{"Beta | S1"}},
	), nil)
	return NewServer(h)
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_catalog", searchCatalogTool, "search_catalog"},
		{"catalog_summary", catalogSummaryTool, "catalog_summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	h := app.NewCatalogHolder()
	srv := NewServer(h)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.holder != h {
		t.Error("holder not set correctly")
	}
}

func TestHandleSearchCatalog(t *testing.T) {
	srv := readyServer()
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		contains  []string
		excludes  []string
	}{
		{
			name:     "no arguments lists everything",
			args:     map[string]any{},
			contains: []string{"🎬 Alpha [movie]", "📺 Beta (S1) [series]", "🎬 Gamma [movie]", "Showing all 3 items"},
		},
		{
			name:     "substring query",
			args:     map[string]any{"query": "GA"},
			contains: []string{"Gamma", "Showing 1 of 3 items"},
			excludes: []string{"Alpha"},
		},
		{
			name:     "type filter",
			args:     map[string]any{"type": "series"},
			contains: []string{"Beta", "Showing 1 of 3 items"},
			excludes: []string{"Alpha", "Gamma"},
		},
		{
			name:     "no matches",
			args:     map[string]any{"query": "zzz"},
			contains: []string{"No items found matching your search", "No items found"},
		},
		{
			name:      "invalid type",
			args:      map[string]any{"type": "music"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			result, err := srv.handleSearchCatalog(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsError != tt.wantError {
				t.Fatalf("IsError = %v, want %v: %s", result.IsError, tt.wantError, extractText(result))
			}
			text := extractText(result)
			for _, want := range tt.contains {
				if !strings.Contains(text, want) {
					t.Errorf("expected %q in %q", want, text)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(text, unwanted) {
					t.Errorf("did not expect %q in %q", unwanted, text)
				}
			}
		})
	}
}

func TestHandleCatalogSummary(t *testing.T) {
	srv := readyServer()

	result, err := srv.handleCatalogSummary(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := extractText(result)
	for _, want := range []string{"3 item(s)", "Movies: 2", "Series: 1"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in %q", want, text)
		}
	}
}

func TestHandlersReportLoadFailure(t *testing.T) {
	h := app.NewCatalogHolder()
	h.Set(nil, errors.New("HTTP error! Status: 500"))
	srv := NewServer(h)

	result, err := srv.handleSearchCatalog(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError || !strings.Contains(extractText(result), "Status: 500") {
		t.Errorf("expected load error, got %q", extractText(result))
	}
}

func TestHandlersRespectContext(t *testing.T) {
	srv := NewServer(app.NewCatalogHolder())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result, err := srv.handleCatalogSummary(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error while the catalog never loads")
	}
}
