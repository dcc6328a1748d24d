package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/view"
)

// catalogItems waits for the catalog load and converts failures into tool errors.
func (s *Server) catalogItems(ctx context.Context) ([]catalog.Item, *mcp.CallToolResult) {
	items, err := s.holder.Wait(ctx)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("%s: %v", view.SummaryError, err))
	}
	return items, nil
}

// handleSearchCatalog filters the catalog by query and type.
func (s *Server) handleSearchCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat, err := catalog.ParseCategory(request.GetString("type", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, errResult := s.catalogItems(ctx)
	if errResult != nil {
		return errResult, nil
	}

	visible := catalog.Filter(items, request.GetString("query", ""), cat)
	return mcp.NewToolResultText(formatRows(visible, items)), nil
}

// handleCatalogSummary reports item counts per type.
func (s *Server) handleCatalogSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, errResult := s.catalogItems(ctx)
	if errResult != nil {
		return errResult, nil
	}

	counts := catalog.CountByType(items)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Catalog contains %d item(s):\nMovies: %d\nSeries: %d\n",
		len(items), counts[catalog.TypeMovie], counts[catalog.TypeSeries],
	)), nil
}

// formatRows renders the visible rows followed by the summary line.
func formatRows(visible, total []catalog.Item) string {
	return view.BuildList(visible, total).Text()
}
