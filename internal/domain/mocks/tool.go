package mocks

import "github.com/medicheck/medicheck/internal/domain/ports"

// ToolBank is a mock implementation of ports.ToolBank.
type ToolBank struct {
	Outputs []ports.ToolOutput

	// Call tracking
	Queries []string
}

// RunAll records the query and returns the configured outputs.
func (m *ToolBank) RunAll(query string) []ports.ToolOutput {
	m.Queries = append(m.Queries, query)
	return m.Outputs
}
