// Package comic defines the core archive entry model.
package comic

import "fmt"

// Comic represents a single entry in the archive.
type Comic struct {
	Number     int
	Title      string
	SafeTitle  string
	AltText    string
	Day        string
	Month      string
	Year       string
	ImageURL   string
	Link       string
	News       string
	Transcript string
}

// DisplayTitle returns the title suitable for rendering. The archive
// publishes a plain-text variant for entries whose raw title carries markup.
func (c Comic) DisplayTitle() string {
	if c.SafeTitle != "" {
		return c.SafeTitle
	}
	return c.Title
}

// Date returns the publication date as published by the archive, or "" when
// any component is missing. The archive serves date parts as bare strings.
func (c Comic) Date() string {
	if c.Year == "" || c.Month == "" || c.Day == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", c.Year, c.Month, c.Day)
}

// PageURL returns the canonical public page for the entry on the given site,
// or "" when the entry number is not known yet.
func (c Comic) PageURL(siteURL string) string {
	if c.Number <= 0 || siteURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/", siteURL, c.Number)
}
