package tool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sheet-ai/backend/internal/llm/mocks"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/tool"
)

// searchFn installs a canned search stream on the mock: fragments are sent in
// order and the channel is closed, as the real provider does.
func searchFn(fragments ...string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		ch := args.Get(2).(chan<- string)
		defer close(ch)
		for _, f := range fragments {
			ch <- f
		}
	}
}

func TestWebSearchTool_Run(t *testing.T) {
	t.Run("Accumulates fragments into intermediate results", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("SearchStream", mock.Anything, "go 1.24 release date", mock.Anything).
			Run(searchFn("Go 1.24 ", "was released ", "in February 2025.")).Return(nil).Once()

		ws := tool.NewWebSearchTool(mockProvider)
		events := runTool(t, ws, "call_1", `{"search_query":"go 1.24 release date"}`)

		// Initial running event, one update per fragment, completion.
		require.Len(t, events, 5)
		assert.Equal(t, model.StatusRunning, events[0].Status)
		assert.Empty(t, events[0].IntermediateResult)

		assert.Equal(t, "Go 1.24 ", events[1].IntermediateResult)
		assert.Equal(t, "Go 1.24 was released ", events[2].IntermediateResult)
		assert.Equal(t, "Go 1.24 was released in February 2025.", events[3].IntermediateResult)

		final := events[4]
		assert.Equal(t, model.StatusComplete, final.Status)
		assert.Equal(t, "Go 1.24 was released in February 2025.", final.Result)
		assert.Equal(t, "go 1.24 release date", final.Args["search_query"])
	})

	t.Run("Empty fragments are skipped", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("SearchStream", mock.Anything, "q", mock.Anything).
			Run(searchFn("", "answer", "")).Return(nil).Once()

		ws := tool.NewWebSearchTool(mockProvider)
		events := runTool(t, ws, "call_1", `{"search_query":"q"}`)

		require.Len(t, events, 3)
		assert.Equal(t, "answer", events[1].IntermediateResult)
		assert.Equal(t, "answer", events[2].Result)
	})

	t.Run("Missing query yields a single error event", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)

		ws := tool.NewWebSearchTool(mockProvider)
		events := runTool(t, ws, "call_1", `{}`)

		require.Len(t, events, 1)
		assert.Equal(t, model.StatusError, events[0].Status)
		assert.Equal(t, "No search query provided", events[0].Result)
		mockProvider.AssertNotCalled(t, "SearchStream")
	})

	t.Run("Malformed arguments yield a single error event", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)

		ws := tool.NewWebSearchTool(mockProvider)
		events := runTool(t, ws, "call_1", `{"search_query":`)

		require.Len(t, events, 1)
		assert.Equal(t, model.StatusError, events[0].Status)
		assert.Equal(t, "Invalid tool arguments", events[0].Result)
	})

	t.Run("Stream failure ends with an error event", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("SearchStream", mock.Anything, "q", mock.Anything).
			Run(searchFn("partial ")).Return(assert.AnError).Once()

		ws := tool.NewWebSearchTool(mockProvider)
		events := runTool(t, ws, "call_1", `{"search_query":"q"}`)

		require.NotEmpty(t, events)
		final := events[len(events)-1]
		assert.Equal(t, model.StatusError, final.Status)
		assert.Equal(t, "Web search failed", final.Result)
	})
}

func TestRegistry(t *testing.T) {
	registry := tool.NewCatalogRegistry(mocks.NewMockProvider(t))

	t.Run("Catalog tools resolve to fresh instances", func(t *testing.T) {
		first := registry.Resolve(tool.RandomToolName)
		second := registry.Resolve(tool.RandomToolName)
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.NotSame(t, first, second)
		assert.Equal(t, tool.RandomToolName, first.Name())

		assert.NotNil(t, registry.Resolve(tool.WebSearchToolName))
	})

	t.Run("Unknown name resolves to nil", func(t *testing.T) {
		assert.Nil(t, registry.Resolve("no_such_tool"))
	})

	t.Run("Names match the advertised catalog", func(t *testing.T) {
		names := registry.Names()
		assert.ElementsMatch(t, []string{tool.RandomToolName, tool.WebSearchToolName}, names)

		specs := tool.Catalog()
		specNames := make([]string, 0, len(specs))
		for _, spec := range specs {
			specNames = append(specNames, spec.Name)
		}
		assert.ElementsMatch(t, names, specNames)
	})
}
