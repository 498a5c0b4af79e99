// Package tools provides the canned search-URL tools whose output is
// appended to validation prompts. No tool performs network I/O.
package tools

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/medicheck/medicheck/internal/domain/ports"
)

// Tool IDs accepted in configuration.
const (
	WHONewsroom = "who_newsroom"
	WHOData     = "who_data"
	Wikipedia   = "wikipedia"
	WebSearch   = "web_search"
	PubMed      = "pubmed"
)

// URLTool embeds a query into a fixed search URL.
type URLTool struct {
	ID    string
	Label string
	Base  string
	Param string
}

// Name returns the source label used in prompts.
func (t *URLTool) Name() string {
	return t.Label
}

// Run returns a line naming the source and the search URL for query.
// Construction errors are reported in the returned text.
func (t *URLTool) Run(query string) string {
	u, err := t.URL(query)
	if err != nil {
		return fmt.Sprintf("Error searching %s: %v", t.Label, err)
	}
	return fmt.Sprintf("%s search for '%s': %s", t.Label, query, u)
}

// URL builds the search URL for query.
func (t *URLTool) URL(query string) (string, error) {
	u, err := url.Parse(t.Base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base URL %q is not absolute", t.Base)
	}
	q := u.Query()
	q.Set(t.Param, query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Defaults returns the built-in tools in prompt order.
func Defaults() []*URLTool {
	return []*URLTool{
		{ID: WHONewsroom, Label: "WHO Newsroom", Base: "https://www.who.int/news-room/search", Param: "query"},
		{ID: WHOData, Label: "WHO Data", Base: "https://data.who.int/search", Param: "q"},
		{ID: Wikipedia, Label: "Wikipedia", Base: "https://en.wikipedia.org/w/index.php", Param: "search"},
		{ID: WebSearch, Label: "Web Search", Base: "https://duckduckgo.com/html/", Param: "q"},
		{ID: PubMed, Label: "PubMed", Base: "https://pubmed.ncbi.nlm.nih.gov/", Param: "term"},
	}
}

// Bank runs a fixed list of tools.
type Bank struct {
	tools []ports.Tool
}

// NewBank creates a bank running tools in the given order.
func NewBank(tools ...ports.Tool) *Bank {
	return &Bank{tools: tools}
}

// DefaultBank creates a bank of the built-in tools minus the disabled IDs.
// Unknown IDs are returned so callers can report them.
func DefaultBank(disabled []string) (*Bank, []string) {
	off := make(map[string]bool, len(disabled))
	for _, id := range disabled {
		off[strings.ToLower(strings.TrimSpace(id))] = true
	}

	bank := &Bank{}
	for _, t := range Defaults() {
		if off[t.ID] {
			delete(off, t.ID)
			continue
		}
		bank.tools = append(bank.tools, t)
	}

	var unknown []string
	for id := range off {
		unknown = append(unknown, id)
	}
	return bank, unknown
}

// RunAll runs every tool in order. An empty query yields no outputs.
func (b *Bank) RunAll(query string) []ports.ToolOutput {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	outputs := make([]ports.ToolOutput, 0, len(b.tools))
	for _, t := range b.tools {
		outputs = append(outputs, ports.ToolOutput{Source: t.Name(), Output: t.Run(query)})
	}
	return outputs
}

// Names returns the source labels of the configured tools.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.tools))
	for _, t := range b.tools {
		names = append(names, t.Name())
	}
	return names
}
