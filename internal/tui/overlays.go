package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/evanschultz/folio/internal/domain"
)

// navScrolledThreshold is the offset past which the nav bar switches style.
const navScrolledThreshold = 2

// narrowNavWidth is the width below which nav items collapse into the menu key.
const narrowNavWidth = 96

// navItem stores one clickable nav label and its column span.
type navItem struct {
	id    sectionID
	text  string
	start int
	end   int
}

// navItems lays out nav labels right-aligned within width.
func (m Model) navItems(width int, active sectionID) []navItem {
	if width < narrowNavWidth {
		return nil
	}
	items := make([]navItem, 0, len(sectionSpecs))
	total := 0
	for idx, spec := range sectionSpecs {
		text := fmt.Sprintf(" %d %s ", idx+1, spec.Label)
		if spec.ID == active {
			text = fmt.Sprintf("[%d %s]", idx+1, spec.Label)
		}
		items = append(items, navItem{id: spec.ID, text: text})
		total += lipgloss.Width(text)
	}
	x := max(0, width-total-1)
	for idx := range items {
		items[idx].start = x
		x += lipgloss.Width(items[idx].text)
		items[idx].end = x
	}
	return items
}

// renderNav renders the one-row navigation bar.
func (m Model) renderNav(pal palette, active sectionID) string {
	brand := " " + m.portfolio.Owner.Initials + "  " + m.portfolio.Owner.Name
	items := m.navItems(m.width, active)
	var line string
	if len(items) == 0 {
		hint := bindingKey(m.keys.menu) + " menu "
		gap := max(1, m.width-lipgloss.Width(brand)-lipgloss.Width(hint))
		line = brand + strings.Repeat(" ", gap) + hint
	} else {
		line = padRight(brand, items[0].start)
		for _, item := range items {
			line += item.text
		}
	}
	line = padRight(truncate(line, m.width), m.width)
	style := lipgloss.NewStyle().Foreground(pal.muted)
	if m.navScrolled() {
		style = lipgloss.NewStyle().Bold(true).Foreground(pal.accent).Background(pal.navScrolled)
	}
	return style.Render(line)
}

// navScrolled reports whether the nav bar uses its scrolled style.
func (m Model) navScrolled() bool {
	return m.offset > navScrolledThreshold
}

// renderMenuOverlay renders the section navigation menu.
func (m Model) renderMenuOverlay(pal palette) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(pal.accent).Render("Navigate"), ""}
	for idx, spec := range sectionSpecs {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(pal.text)
		if idx == m.menuIndex {
			prefix = "› "
			style = style.Bold(true).Foreground(pal.accent)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%d %s", prefix, idx+1, spec.Label)))
	}
	if m.portfolio.Resume.URL != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(pal.accentAlt).Render(bindingKey(m.keys.resume)+" copy resume link"))
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(pal.muted).Render("enter go • esc close"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.dim).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// detailWidth returns the detail modal inner width.
func (m Model) detailWidth() int {
	return clamp(m.width-12, 30, 84)
}

// renderDetailOverlay renders the open project's detail modal.
func (m Model) renderDetailOverlay(project domain.Project, pal palette) string {
	inner := m.detailWidth()
	bold := lipgloss.NewStyle().Bold(true).Foreground(pal.text)
	muted := lipgloss.NewStyle().Foreground(pal.muted)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(pal.accent).Render(project.Title),
		lipgloss.NewStyle().Foreground(pal.accentAlt).Render(joinNonEmpty(" · ", project.Category, project.Date)),
		"",
	}
	if body := m.md.render(project.LongDescription(), inner, m.theme); body != "" {
		lines = append(lines, body, "")
	}
	if len(project.Features) > 0 {
		lines = append(lines, bold.Render("Key Features"))
		for _, feature := range project.Features {
			for idx, line := range wrapLines(feature, inner-4) {
				prefix := "    "
				if idx == 0 {
					prefix = "  • "
				}
				lines = append(lines, prefix+line)
			}
		}
		lines = append(lines, "")
	}
	if len(project.Technologies) > 0 {
		lines = append(lines, bold.Render("Technologies"), lipgloss.NewStyle().Foreground(pal.accent).Render(strings.Join(wrapLines(chips(project.Technologies), inner), "\n")), "")
	}
	for _, link := range project.Links() {
		lines = append(lines, bold.Render(padRight(link.Label, 10))+muted.Render(linkTarget(link)))
	}
	lines = append(lines, "", muted.Render(bindingKey(m.keys.copyLink)+" copy link • esc/x close • [ ] filter"))
	maxLines := max(3, m.height-4)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.accent).
		Padding(0, 1).
		Render(fitLines(strings.Join(lines, "\n"), min(maxLines, lipgloss.Height(strings.Join(lines, "\n")))))
}

// overlayBox returns the top-left corner and size of a centered overlay.
func (m Model) overlayBox(overlay string) (int, int, int, int) {
	w := lipgloss.Width(overlay)
	h := lipgloss.Height(overlay)
	x := max(0, (m.width-w)/2)
	y := max(0, (m.height-h)/2)
	return x, y, w, h
}

// renderHelpOverlay renders the full key reference.
func (m Model) renderHelpOverlay(pal palette, maxWidth int) string {
	width := clamp(maxWidth, 56, 100)
	hb := m.help
	hb.ShowAll = true
	hb.SetWidth(width - 4)

	title := lipgloss.NewStyle().Bold(true).Foreground(pal.accent).Render("folio help")
	subtitle := lipgloss.NewStyle().Foreground(pal.muted).Render(m.portfolio.Owner.Name + " · portfolio")
	tips := []string{
		lipgloss.NewStyle().Bold(true).Foreground(pal.accent).Render("Tips"),
		"1. 1-7 or the menu jump to a section; g returns to the top",
		"2. tab focuses projects then skills; [ ] switch filters; h/l pick a card",
		"3. enter opens project details; click outside or press esc to close",
		"4. " + bindingKey(m.keys.copyLink) + " copies the repository link; " + bindingKey(m.keys.resume) + " copies the resume link",
	}
	lines := []string{
		title,
		subtitle,
		"",
		hb.View(m.keys),
		"",
		lipgloss.NewStyle().Foreground(pal.muted).Render(strings.Join(tips, "\n")),
		lipgloss.NewStyle().Foreground(pal.muted).Render("press ? or esc to close"),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.dim).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
