package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLTool_Run(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{
			id:       WHONewsroom,
			expected: "WHO Newsroom search for 'mask efficacy': https://www.who.int/news-room/search?query=mask+efficacy",
		},
		{
			id:       WHOData,
			expected: "WHO Data search for 'mask efficacy': https://data.who.int/search?q=mask+efficacy",
		},
		{
			id:       Wikipedia,
			expected: "Wikipedia search for 'mask efficacy': https://en.wikipedia.org/w/index.php?search=mask+efficacy",
		},
		{
			id:       WebSearch,
			expected: "Web Search search for 'mask efficacy': https://duckduckgo.com/html/?q=mask+efficacy",
		},
		{
			id:       PubMed,
			expected: "PubMed search for 'mask efficacy': https://pubmed.ncbi.nlm.nih.gov/?term=mask+efficacy",
		},
	}

	byID := map[string]*URLTool{}
	for _, tool := range Defaults() {
		byID[tool.ID] = tool
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tool, ok := byID[tt.id]
			require.True(t, ok)
			assert.Equal(t, tt.expected, tool.Run("mask efficacy"))
		})
	}
}

func TestURLTool_Run_EscapesQuery(t *testing.T) {
	tool := &URLTool{Label: "PubMed", Base: "https://pubmed.ncbi.nlm.nih.gov/", Param: "term"}

	out := tool.Run("covid & masks?")

	assert.Contains(t, out, "term=covid+%26+masks%3F")
}

func TestURLTool_Run_ConstructionError(t *testing.T) {
	tests := []struct {
		name string
		base string
	}{
		{name: "bad escape", base: "https://example.com/%zz"},
		{name: "relative", base: "/search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := &URLTool{Label: "Broken", Base: tt.base, Param: "q"}

			out := tool.Run("x")

			assert.Contains(t, out, "Error searching Broken:")
		})
	}
}

func TestBank_RunAll(t *testing.T) {
	bank, unknown := DefaultBank(nil)
	require.Empty(t, unknown)

	outputs := bank.RunAll("vaccines")

	require.Len(t, outputs, 5)
	assert.Equal(t, "WHO Newsroom", outputs[0].Source)
	assert.Equal(t, "WHO Data", outputs[1].Source)
	assert.Equal(t, "Wikipedia", outputs[2].Source)
	assert.Equal(t, "Web Search", outputs[3].Source)
	assert.Equal(t, "PubMed", outputs[4].Source)
	for _, out := range outputs {
		assert.Contains(t, out.Output, "vaccines")
	}
}

func TestBank_RunAll_EmptyQuery(t *testing.T) {
	bank, _ := DefaultBank(nil)

	assert.Empty(t, bank.RunAll("   "))
}

func TestDefaultBank_Disabled(t *testing.T) {
	bank, unknown := DefaultBank([]string{"PubMed", " who_data ", "bing"})

	assert.Equal(t, []string{"WHO Newsroom", "Wikipedia", "Web Search"}, bank.Names())
	assert.Equal(t, []string{"bing"}, unknown)
}

func TestNewBank(t *testing.T) {
	tool := &URLTool{Label: "Custom", Base: "https://example.com/s", Param: "q"}
	bank := NewBank(tool)

	outputs := bank.RunAll("x")

	require.Len(t, outputs, 1)
	assert.Equal(t, "Custom search for 'x': https://example.com/s?q=x", outputs[0].Output)
}
