package tool

import "sheet-ai/backend/internal/llm"

// Tool names shared by the catalog and the registry. The catalog sent to the
// model must stay in sync with what the registry can resolve.
const (
	RandomToolName    = "generate_random_integer"
	WebSearchToolName = "web_search"
)

// Catalog returns the static tool declarations offered to the model on every
// tool-capable call, regardless of whether prior turns used tools.
func Catalog() []llm.ToolSpec {
	return []llm.ToolSpec{
		{
			Name:        RandomToolName,
			Description: "Generate a random integer between 1 and 100. Use this when the user asks for a random number.",
			Parameters: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
			Strict: true,
		},
		{
			Name:        WebSearchToolName,
			Description: "Search the web for up-to-date information and return a textual summary of the results.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"search_query": map[string]any{
						"type":        "string",
						"description": "The query to search the web for.",
					},
				},
				"required":             []string{"search_query"},
				"additionalProperties": false,
			},
			Strict: true,
		},
	}
}

// NewCatalogRegistry wires every catalog entry to its constructor. provider
// backs the web search tool's nested streamed call.
func NewCatalogRegistry(provider llm.Provider) *Registry {
	r := NewRegistry()
	r.Register(RandomToolName, func() Tool { return NewRandomTool() })
	r.Register(WebSearchToolName, func() Tool { return NewWebSearchTool(provider) })
	return r
}
