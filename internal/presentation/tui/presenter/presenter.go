// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/comix/internal/domain/comic"
	"github.com/tesso57/comix/internal/infrastructure/feed"
	"github.com/tesso57/comix/internal/presentation/tui/textutil"
)

// Item is a view model for the recent-entries list.
type Item struct {
	Number    int
	TitleText string
	Published string
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the list line for the entry.
func (i *Item) Title() string { return fmt.Sprintf("#%d %s", i.Number, i.TitleText) }

// Description returns the publication line for list display.
func (i *Item) Description() string { return i.Published }

// BuildRecentItems builds list items from feed entries.
func BuildRecentItems(entries []feed.Item) []list.Item {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = &Item{
			Number:    entry.Number,
			TitleText: entry.Title,
			Published: entry.Published,
		}
	}
	return items
}

// ApplyRecentList updates the list model with recent entries.
func ApplyRecentList(model *list.Model, entries []feed.Item) {
	model.SetItems(BuildRecentItems(entries))
}

// DetailProps carries everything needed to render one entry.
type DetailProps struct {
	Comic   comic.Comic
	Preview string
	Width   int
	Accent  string
	Dim     string
}

// Detail renders the full entry body: title, date, image (preview or link),
// alt text, and transcript/news when present.
func Detail(p DetailProps) string {
	width := p.Width
	if width <= 0 {
		width = 80
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("#%d: %s", p.Comic.Number, p.Comic.DisplayTitle())))
	b.WriteString("\n")
	if date := p.Comic.Date(); date != "" {
		b.WriteString(dimStyle.Render("Published "+date) + "\n")
	}
	b.WriteString("\n")

	if p.Preview != "" {
		b.WriteString(p.Preview + "\n\n")
	} else if p.Comic.ImageURL != "" {
		b.WriteString(dimStyle.Render("Image: "+p.Comic.ImageURL) + "\n\n")
	}

	if p.Comic.AltText != "" {
		b.WriteString(textutil.Wrap(p.Comic.AltText, width) + "\n")
	}

	if p.Comic.Link != "" {
		b.WriteString("\n" + dimStyle.Render("Link: "+p.Comic.Link) + "\n")
	}

	if p.Comic.News != "" {
		b.WriteString("\n" + dimStyle.Render("News") + "\n")
		b.WriteString(textutil.Wrap(p.Comic.News, width) + "\n")
	}

	if p.Comic.Transcript != "" {
		b.WriteString("\n" + dimStyle.Render("Transcript") + "\n")
		b.WriteString(textutil.Wrap(p.Comic.Transcript, width) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
