package tui

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// browserLayout locates the filter bar and card grid inside a browser section.
// Rows are relative to the section's first row.
type browserLayout struct {
	categories []string
	filterRows [][]int
	filterTop  int
	gridTop    int
	cardHeight int
	cardWidth  int
	cols       int
	cards      int
}

// layoutFor mirrors renderProjects and renderSkills row by row.
func (m Model) layoutFor(id sectionID, pal palette) (browserLayout, bool) {
	cw := contentWidth(m.width)
	var (
		title      string
		categories []string
		card       string
		cols       int
		cards      int
	)
	switch id {
	case sectionProjects:
		title = projectsTitle
		categories = m.projects.Categories()
		view := m.projects.FilteredView()
		cards = len(view)
		if cards > 0 {
			var inner int
			cols, inner = gridColumns(cw, projectCardMin)
			card = renderProjectCard(view[0], inner, false, pal)
		}
	case sectionSkills:
		title = skillsTitle
		categories = m.skills.Categories()
		view := m.skills.FilteredView()
		cards = len(view)
		if cards > 0 {
			var inner int
			cols, inner = gridColumns(cw, skillCardMin)
			rows := 0
			for _, group := range view {
				rows = max(rows, len(group.Skills))
			}
			card = renderSkillCard(view[0], inner, rows, false, pal)
		}
	default:
		return browserLayout{}, false
	}

	filterTop := lipgloss.Height(sectionHeader(title, cw, pal)) + 1
	filterRows := filterBarRows(categories, cw)
	return browserLayout{
		categories: categories,
		filterRows: filterRows,
		filterTop:  filterTop,
		gridTop:    filterTop + len(filterRows) + 1,
		cardHeight: lipgloss.Height(card),
		cardWidth:  lipgloss.Width(card),
		cols:       cols,
		cards:      cards,
	}, true
}

// categoryAt returns the filter button under column x on one filter row.
func (l browserLayout) categoryAt(line string, filterRow, x int) (string, bool) {
	if filterRow < 0 || filterRow >= len(l.filterRows) {
		return "", false
	}
	indices := l.filterRows[filterRow]
	rowWidth := 2
	for _, idx := range indices {
		rowWidth += filterButtonWidth(l.categories[idx])
	}
	// Every filter row starts behind a two-cell marker or indent.
	cursor := centeredLeft(lipgloss.Width(line), rowWidth) + 2
	for _, idx := range indices {
		w := filterButtonWidth(l.categories[idx])
		if x >= cursor && x < cursor+w {
			return l.categories[idx], true
		}
		cursor += w
	}
	return "", false
}

// cardAt returns the filtered-view index of the card under (row, x), where
// gridLine is the top line of the card row containing row.
func (l browserLayout) cardAt(gridLine string, row, x int) (int, bool) {
	if l.cards == 0 || l.cardHeight <= 0 || l.cardWidth <= 0 || row < l.gridTop {
		return 0, false
	}
	gridRow := (row - l.gridTop) / l.cardHeight
	plain := ansi.Strip(gridLine)
	left := len(plain) - len(strings.TrimLeft(plain, " "))
	if x < left {
		return 0, false
	}
	col := (x - left) / l.cardWidth
	if col >= l.cols {
		return 0, false
	}
	idx := gridRow*l.cols + col
	if idx >= l.cards {
		return 0, false
	}
	return idx, true
}

// gridRowTop returns the section row where the card row containing row begins.
func (l browserLayout) gridRowTop(row int) int {
	if l.cardHeight <= 0 {
		return l.gridTop
	}
	return l.gridTop + (row-l.gridTop)/l.cardHeight*l.cardHeight
}

// centeredLeft returns the left padding lipgloss.PlaceHorizontal gives a centered
// line of lineWidth cells inside a placed line of placedWidth cells.
func centeredLeft(placedWidth, lineWidth int) int {
	gap := placedWidth - lineWidth
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

// clickBrowser applies a body click on a filter button or card in section id.
// row is relative to the section's first row.
func (m *Model) clickBrowser(id sectionID, lines []string, row, x int) bool {
	layout, ok := m.layoutFor(id, m.theme.palette())
	if !ok || row < 0 || row >= len(lines) {
		return false
	}

	if filterRow := row - layout.filterTop; filterRow >= 0 && filterRow < len(layout.filterRows) {
		category, ok := layout.categoryAt(lines[row], filterRow, x)
		if !ok {
			return false
		}
		if id == sectionSkills {
			m.focus = focusSkills
			_ = m.skills.SelectCategory(category)
			m.status = "skills: " + filterLabel(m.skills)
		} else {
			m.focus = focusProjects
			_ = m.projects.SelectCategory(category)
			m.status = "projects: " + filterLabel(m.projects)
		}
		m.clampOffset()
		return true
	}

	top := layout.gridRowTop(row)
	if row < layout.gridTop || top >= len(lines) {
		return false
	}
	idx, ok := layout.cardAt(lines[top], row, x)
	if !ok {
		return false
	}
	if id == sectionSkills {
		m.focus = focusSkills
		m.skills.MoveCursor(idx - m.skills.Cursor())
		if group, ok := m.skills.CursorItem(); ok {
			m.status = "skills: " + group.Name
		}
		return true
	}
	m.focus = focusProjects
	m.projects.MoveCursor(idx - m.projects.Cursor())
	m.openDetail()
	return true
}
