package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchCatalogTool defines the search_catalog MCP tool.
var searchCatalogTool = mcp.NewTool("search_catalog",
	mcp.WithDescription("Search the movie and series catalog by title substring. Returns matching titles in catalog order with a summary line."),
	mcp.WithString("query",
		mcp.Description("Case-insensitive substring to match; empty matches everything"),
	),
	mcp.WithString("type",
		mcp.Description("Restrict results to one category (default all)"),
		mcp.Enum("all", "movie", "series"),
	),
)

// catalogSummaryTool defines the catalog_summary MCP tool.
var catalogSummaryTool = mcp.NewTool("catalog_summary",
	mcp.WithDescription("Get the number of movies and series in the catalog."),
)
