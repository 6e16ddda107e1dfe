package domain

import (
	"regexp"
	"strings"
)

// Labelled link shapes recognized in descriptions. Ticket and documentation
// links are full markdown links, the testing link is a bare bracketed URL.
// A naked URL after a label does not count.
var (
	ticketLinkPattern        = regexp.MustCompile(`(?i)ticket\s+link:\s*\[[^\]]+\]\((https?://[^)]+)\)`)
	documentationLinkPattern = regexp.MustCompile(`(?i)documentation\s+link:\s*\[[^\]]+\]\((https?://[^)]+)\)`)
	testingLinkPattern       = regexp.MustCompile(`(?i)testing\s+link:\s*\[(https?://[^\]]+)\]`)
	urlPattern               = regexp.MustCompile(`https?://[^\s)]+`)
)

// LinkExtractor scans free-text descriptions for labelled reference links.
// It is stateless; the zero value is ready to use.
type LinkExtractor struct{}

func NewLinkExtractor() LinkExtractor { return LinkExtractor{} }

// Extract returns the first ticket, documentation and testing links found
// in the description. Each category is independent; later duplicates of a
// label are ignored. An empty description yields the zero value.
func (LinkExtractor) Extract(description string) ExtractedLinks {
	if description == "" {
		return ExtractedLinks{}
	}

	var links ExtractedLinks
	if m := ticketLinkPattern.FindStringSubmatch(description); m != nil {
		links.TicketLink = strings.TrimSpace(m[1])
	}
	if m := documentationLinkPattern.FindStringSubmatch(description); m != nil {
		links.DocumentationLink = strings.TrimSpace(m[1])
	}
	if m := testingLinkPattern.FindStringSubmatch(description); m != nil {
		links.TestingLink = strings.TrimSpace(m[1])
	}
	return links
}

// ExtractAllURLs returns every http(s) URL in the description in order of
// appearance, duplicates included. Fallback utility, independent of the
// labelled extraction.
func (LinkExtractor) ExtractAllURLs(description string) []string {
	if description == "" {
		return nil
	}
	return urlPattern.FindAllString(description, -1)
}
