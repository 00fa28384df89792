// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryItem interface for items that can be rendered by EntryDelegate.
type EntryItem interface {
	list.Item
	Title() string
}

// EntryDelegate renders archive entries as single compact lines.
type EntryDelegate struct {
	Styles list.DefaultItemStyles
}

// NewEntryDelegate creates a new EntryDelegate.
func NewEntryDelegate() *EntryDelegate {
	return &EntryDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
	}
}

// Height returns the height of the item.
func (d *EntryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *EntryDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(EntryItem)
	if !ok {
		return
	}

	style := itemStyle(d.Styles, m, index)
	renderItemText(w, style, truncateItemText(m, style, i.Title()))
}
