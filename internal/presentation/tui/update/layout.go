package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/comix/internal/presentation/tui/metrics"
	"github.com/tesso57/comix/internal/presentation/tui/state"
)

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	mainHeight        int
}

// UpdateSizes resizes the recent-entries list and the detail viewport to fit
// the terminal.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.RecentList.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
	s.Viewport.Width = layout.mainWidth
	s.Viewport.Height = layout.mainHeight
	s.TextInput.Width = clampMin(layout.mainWidth-metrics.HeaderWidthPadding, 10)
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)

	mainHeight := clampMin(availableHeight-metrics.HeaderLines, 1)
	sidebarListHeight := clampMin(availableHeight-metrics.SidebarTitleLines, 1)

	sidebarWidth := s.Width / 3
	mainWidth := s.Width - sidebarWidth - metrics.SidebarRightBorderWidth

	sidebarListHeight = reservePaginationSpace(s.RecentList, sidebarListHeight)

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         mainWidth,
		sidebarListHeight: sidebarListHeight,
		mainHeight:        mainHeight,
	}
}

func detailWrapWidth(s *state.ModelState) int {
	if s.Width <= 0 {
		return 72
	}
	return clampMin(buildLayoutMetrics(s).mainWidth-metrics.ItemRightPadding-metrics.ItemSafetyPadding, 20)
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(s.Help.View(&s.Keys))
}

func reservePaginationSpace(m list.Model, height int) int {
	if height < 1 || !m.ShowPagination() {
		return height
	}
	if height <= 1 {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
