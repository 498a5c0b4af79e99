package entities

import (
	"fmt"
	"strings"
)

// Fallback values for missing content fields.
const (
	NoTitle      = "No title"
	NoURL        = "No URL"
	NotAvailable = "Not available"
)

// MaxTextLength is the maximum number of characters of page text embedded
// in a prompt.
const MaxTextLength = 30000

// ContentPayload is the scraped page sent by the browser extension.
type ContentPayload struct {
	Title    string          `json:"title"`
	URL      string          `json:"url"`
	Text     string          `json:"text"`
	Metadata ContentMetadata `json:"metadata"`
}

// ContentMetadata holds the page meta tags picked up by the extension.
type ContentMetadata struct {
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	Author        string `json:"author"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
}

// TruncateText cuts text to at most limit characters. Truncation counts
// runes and ignores word boundaries.
func TruncateText(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	if len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// Format renders the payload as the text block that is fact-checked.
// maxText limits the page text; zero means MaxTextLength.
func (c *ContentPayload) Format(maxText int) string {
	if maxText <= 0 {
		maxText = MaxTextLength
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", orDefault(c.Title, NoTitle))
	fmt.Fprintf(&b, "URL: %s\n\n", orDefault(c.URL, NoURL))
	b.WriteString("Metadata:\n")
	fmt.Fprintf(&b, "- Description: %s\n", orDefault(c.Metadata.Description, NotAvailable))
	fmt.Fprintf(&b, "- Keywords: %s\n", orDefault(c.Metadata.Keywords, NotAvailable))
	fmt.Fprintf(&b, "- Author: %s\n", orDefault(c.Metadata.Author, NotAvailable))
	fmt.Fprintf(&b, "- Open Graph Title: %s\n", orDefault(c.Metadata.OGTitle, NotAvailable))
	fmt.Fprintf(&b, "- Open Graph Description: %s\n\n", orDefault(c.Metadata.OGDescription, NotAvailable))
	b.WriteString("Main Content:\n")
	b.WriteString(TruncateText(c.Text, maxText))

	return b.String()
}

// SearchTerm picks the phrase handed to the search tools: the title, then
// the Open Graph title, then the description, then the start of the text.
func (c *ContentPayload) SearchTerm() string {
	for _, candidate := range []string{c.Title, c.Metadata.OGTitle, c.Metadata.Description} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}
	return strings.TrimSpace(TruncateText(c.Text, 200))
}

// Label returns a short human-readable reference to the page.
func (c *ContentPayload) Label() string {
	return fmt.Sprintf("%s (%s)", orDefault(c.Title, NoTitle), orDefault(c.URL, NoURL))
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
