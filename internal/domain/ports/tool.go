package ports

// Tool builds a context string for a query. Tools never fail: construction
// problems are reported inside the returned text.
type Tool interface {
	// Name returns the source name used to label the output in prompts.
	Name() string

	// Run returns the tool output for the given query.
	Run(query string) string
}

// ToolOutput is the labeled result of running one tool.
type ToolOutput struct {
	Source string
	Output string
}

// ToolBank runs a fixed set of tools in registration order.
type ToolBank interface {
	RunAll(query string) []ToolOutput
}
