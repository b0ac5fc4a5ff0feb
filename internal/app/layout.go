package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"waystyle/internal/ui"
)

const sidebarWidth = 22 // 20 content + 2 border/padding

func renderTopBar(stylePath, selector string, dirty bool, width int, sidebarFocused bool) string {
	selectorDisplay := selector
	if selectorDisplay == "" {
		selectorDisplay = "(none)"
	}
	dirtyMark := ""
	if dirty {
		dirtyMark = " [+]"
	}
	content := fmt.Sprintf("File: %s%s  Rule: %s", stylePath, dirtyMark, selectorDisplay)
	if width > 4 {
		content = truncate.StringWithTail(content, uint(width-4), "…")
	}
	hint := ""
	if sidebarFocused {
		hint = ui.DimStyle.Render("  [s] rule")
	}
	return ui.StatusBarStyle.Width(width).Render(content + hint)
}

func renderSidebar(pages []PageID, active PageID, pageMap map[PageID]Page, height int, focused bool) string {
	var b strings.Builder
	var title string
	if focused {
		title = ui.BoldStyle.Render("waystyle [FOCUSED]")
	} else {
		title = ui.TitleStyle.Render("waystyle")
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, id := range pages {
		p := pageMap[id]
		if id == active {
			b.WriteString(ui.SidebarActiveStyle.Render("▸ " + p.Name()))
		} else {
			b.WriteString(ui.SidebarItemStyle.Render("  " + p.Name()))
		}
		b.WriteString("\n")
	}

	style := ui.SidebarStyle.Height(height)
	if focused {
		style = style.BorderForeground(ui.Primary)
	}
	return style.Render(b.String())
}

func renderStatusBar(pageHelp []key.Binding, width int, focus FocusArea) string {
	var parts []string

	if focus == FocusSidebar {
		parts = append(parts,
			ui.StatusKey("↑/↓", "navigate"),
			ui.StatusKey("enter", "select"),
			ui.StatusKey(GlobalKeys.RulePicker.Help().Key, GlobalKeys.RulePicker.Help().Desc),
		)
	} else {
		for _, kb := range pageHelp {
			if kb.Enabled() {
				parts = append(parts, ui.StatusKey(kb.Help().Key, kb.Help().Desc))
			}
		}
	}

	parts = append(parts,
		ui.StatusKey("tab", "focus"),
		ui.StatusKey("?", "help"),
		ui.StatusKey("q", "quit"),
	)

	line := strings.Join(parts, "  ")
	return ui.StatusBarStyle.Width(width).Render(line)
}

func renderLayout(topBar, sidebar, content, statusBar string) string {
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, topBar, main, statusBar)
}
