package tui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/folio/internal/browser"
	"github.com/evanschultz/folio/internal/domain"
	"github.com/evanschultz/folio/internal/reveal"
	"github.com/muesli/reflow/wordwrap"
)

// sectionID identifies one page section in display order.
type sectionID int

// sectionHome and related constants define the page order.
const (
	sectionHome sectionID = iota
	sectionAbout
	sectionExperience
	sectionProjects
	sectionPublications
	sectionSkills
	sectionContact
)

// sectionSpec stores one section key and nav label.
type sectionSpec struct {
	ID    sectionID
	Key   string
	Label string
}

// sectionSpecs stores the canonical section ordering.
var sectionSpecs = []sectionSpec{
	{ID: sectionHome, Key: "home", Label: "Home"},
	{ID: sectionAbout, Key: "about", Label: "About"},
	{ID: sectionExperience, Key: "experience", Label: "Experience"},
	{ID: sectionProjects, Key: "projects", Label: "Projects"},
	{ID: sectionPublications, Key: "publications", Label: "Publications"},
	{ID: sectionSkills, Key: "skills", Label: "Skills"},
	{ID: sectionContact, Key: "contact", Label: "Contact"},
}

// key returns the reveal key for the section.
func (s sectionID) key() string {
	if int(s) < 0 || int(s) >= len(sectionSpecs) {
		return ""
	}
	return sectionSpecs[s].Key
}

// label returns the nav label for the section.
func (s sectionID) label() string {
	if int(s) < 0 || int(s) >= len(sectionSpecs) {
		return ""
	}
	return sectionSpecs[s].Label
}

// layout constants used by section renderers.
const (
	maxContentWidth = 110
	minContentWidth = 24
	projectCardMin  = 34
	skillCardMin    = 38
	skillBarWidth   = 14
	cardSummaryRows = 2
)

// Browser section headings.
const (
	projectsTitle = "Featured Projects"
	skillsTitle   = "Skills & Expertise"
)

// pageSection stores one rendered section and its first row.
type pageSection struct {
	id    sectionID
	start int
	lines []string
}

// page stores the full rendered document.
type page struct {
	sections []pageSection
	total    int
}

// bounds returns reveal bounds for every section.
func (p page) bounds() []reveal.Bounds {
	out := make([]reveal.Bounds, 0, len(p.sections))
	for _, section := range p.sections {
		out = append(out, reveal.Bounds{
			Key:  section.id.key(),
			Span: reveal.Span{Start: section.start, Height: len(section.lines)},
		})
	}
	return out
}

// sectionStart returns the first row of id.
func (p page) sectionStart(id sectionID) int {
	for _, section := range p.sections {
		if section.id == id {
			return section.start
		}
	}
	return 0
}

// sectionAt returns the section containing row.
func (p page) sectionAt(row int) sectionID {
	current := sectionHome
	for _, section := range p.sections {
		if section.start <= row {
			current = section.id
		}
	}
	return current
}

// contentWidth returns the centered column width for a terminal width.
func contentWidth(width int) int {
	return clamp(width-4, minContentWidth, maxContentWidth)
}

// buildPage renders every section at the current width and records its start row.
func (m Model) buildPage() page {
	pal := m.theme.palette()
	cw := contentWidth(m.width)
	out := page{sections: make([]pageSection, 0, len(sectionSpecs))}
	row := 0
	for _, spec := range sectionSpecs {
		block := m.renderSection(spec.ID, cw, pal)
		block = lipgloss.PlaceHorizontal(max(cw, m.width), lipgloss.Center, block)
		lines := strings.Split(block, "\n")
		lines = append(lines, "")
		out.sections = append(out.sections, pageSection{id: spec.ID, start: row, lines: lines})
		row += len(lines)
	}
	out.total = row
	return out
}

// renderSection dispatches to the section renderer.
func (m Model) renderSection(id sectionID, width int, pal palette) string {
	switch id {
	case sectionHome:
		return m.renderHome(width, pal)
	case sectionAbout:
		return m.renderAbout(width, pal)
	case sectionExperience:
		return m.renderExperience(width, pal)
	case sectionProjects:
		return m.renderProjects(width, pal)
	case sectionPublications:
		return m.renderPublications(width, pal)
	case sectionSkills:
		return m.renderSkills(width, pal)
	case sectionContact:
		return m.renderContact(width, pal)
	default:
		return ""
	}
}

// sectionHeader renders a centered section title.
func sectionHeader(title string, width int, pal palette) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.accent)
	rule := lipgloss.NewStyle().Foreground(pal.dim).Render(strings.Repeat("─", clamp(lipgloss.Width(title)+8, 8, width)))
	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), rule)
}

// renderHome renders the hero banner.
func (m Model) renderHome(width int, pal palette) string {
	owner := m.portfolio.Owner
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(pal.accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.accentAlt).
		Padding(0, 2).
		Render(owner.Initials)
	name := lipgloss.NewStyle().Bold(true).Foreground(pal.text).Render("Hi, I'm " + owner.Name)
	headline := lipgloss.NewStyle().Foreground(pal.accentAlt).Render(owner.Headline)
	tagline := lipgloss.NewStyle().Foreground(pal.muted).Render(strings.Join(wrapLines(owner.Tagline, width-8), "\n"))

	socials := make([]string, 0, len(m.portfolio.Socials))
	for _, link := range m.portfolio.Socials {
		socials = append(socials, link.Label)
	}
	socialLine := lipgloss.NewStyle().Foreground(pal.accent).Render(strings.Join(socials, "  ·  "))
	hints := lipgloss.NewStyle().Foreground(pal.dim).Render(
		fmt.Sprintf("%s resume  ·  2 about me  ·  %s menu  ·  ? help", bindingKey(m.keys.resume), bindingKey(m.keys.menu)),
	)
	return lipgloss.JoinVertical(lipgloss.Center, "", badge, "", name, headline, "", tagline, "", socialLine, "", hints, "")
}

// renderAbout renders the bio and education timeline.
func (m Model) renderAbout(width int, pal palette) string {
	about := m.portfolio.About
	heading := about.Heading
	if heading == "" {
		heading = "About Me"
	}
	lines := []string{sectionHeader(heading, width, pal), ""}
	if len(about.Paragraphs) > 0 {
		lines = append(lines, m.md.render(strings.Join(about.Paragraphs, "\n\n"), width, m.theme))
	}
	if len(about.Interests) > 0 {
		lines = append(lines, "", labelValue("Interests", strings.Join(about.Interests, " · "), pal))
	}
	if len(about.Education) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Foreground(pal.text).Render("Education"))
		for _, edu := range about.Education {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(pal.accent).Render("● ")+lipgloss.NewStyle().Bold(true).Render(edu.Degree),
				lipgloss.NewStyle().Foreground(pal.muted).Render("  "+joinNonEmpty(" · ", edu.Institute, edu.Score, edu.Year)),
			)
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderExperience renders roles and internships.
func (m Model) renderExperience(width int, pal palette) string {
	exp := m.portfolio.Experience
	lines := []string{sectionHeader("Experience", width, pal), ""}
	for _, role := range exp.Roles {
		lines = append(lines, renderRole(role, width, pal)...)
		lines = append(lines, "")
	}
	if len(exp.Internships) > 0 {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(pal.accentAlt).Render("Internships"), "")
		for _, role := range exp.Internships {
			lines = append(lines, renderRole(role, width, pal)...)
			lines = append(lines, "")
		}
	}
	if len(exp.Roles) == 0 && len(exp.Internships) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.muted).Render("No experience listed yet."))
	}
	return strings.Join(trimTrailingBlank(lines), "\n")
}

// renderRole renders one experience entry.
func renderRole(role domain.Role, width int, pal palette) []string {
	title := lipgloss.NewStyle().Bold(true).Foreground(pal.text).Render(role.Position)
	if role.Company != "" {
		title += lipgloss.NewStyle().Foreground(pal.accent).Render(" @ " + role.Company)
	}
	lines := []string{title}
	if meta := joinNonEmpty(" · ", role.Duration, role.Location); meta != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.muted).Render(meta))
	}
	lines = append(lines, wrapLines(role.Description, width)...)
	for _, achievement := range role.Achievements {
		for idx, line := range wrapLines(achievement, width-4) {
			prefix := "    "
			if idx == 0 {
				prefix = "  • "
			}
			lines = append(lines, prefix+line)
		}
	}
	if len(role.Skills) > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.accentAlt).Render(chips(role.Skills)))
	}
	if role.Impact != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.success).Render("Impact: "+role.Impact))
	}
	return lines
}

// renderProjects renders the project filter bar and card grid.
func (m Model) renderProjects(width int, pal palette) string {
	lines := []string{sectionHeader(projectsTitle, width, pal), ""}
	lines = append(lines, renderFilterBar(m.projects.Categories(), m.projects.ActiveCategory(), m.focus == focusProjects, width, pal), "")
	view := m.projects.FilteredView()
	if len(view) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.muted).Render("No projects yet."))
		return strings.Join(lines, "\n")
	}
	cols, inner := gridColumns(width, projectCardMin)
	cards := make([]string, 0, len(view))
	for idx, project := range view {
		selected := m.focus == focusProjects && idx == m.projects.Cursor()
		cards = append(cards, renderProjectCard(project, inner, selected, pal))
	}
	lines = append(lines, joinGrid(cards, cols))
	lines = append(lines, lipgloss.NewStyle().Foreground(pal.dim).Render(
		fmt.Sprintf("%d of %d projects · enter details · %s copy link", len(view), m.projects.Len(), bindingKey(m.keys.copyLink)),
	))
	return strings.Join(lines, "\n")
}

// renderProjectCard renders one fixed-height project card.
func renderProjectCard(project domain.Project, inner int, selected bool, pal palette) string {
	border := pal.dim
	if selected {
		border = pal.accent
	}
	summary := wrapLines(project.Summary, inner)
	for len(summary) < cardSummaryRows {
		summary = append(summary, "")
	}
	if len(summary) > cardSummaryRows {
		summary = summary[:cardSummaryRows]
		summary[cardSummaryRows-1] = truncate(summary[cardSummaryRows-1]+" …", inner)
	}
	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(pal.text).Render(padRight(truncate(project.Title, inner), inner)),
		lipgloss.NewStyle().Foreground(pal.accentAlt).Render(padRight(truncate(joinNonEmpty(" · ", project.Category, project.Date), inner), inner)),
	}
	for _, line := range summary {
		rows = append(rows, lipgloss.NewStyle().Foreground(pal.muted).Render(padRight(truncate(line, inner), inner)))
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(pal.dim).Render(padRight(truncate(strings.Join(project.Technologies, ", "), inner), inner)))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

// renderPublications renders papers, certifications, and positions.
func (m Model) renderPublications(width int, pal palette) string {
	pubs := m.portfolio.Publications
	lines := []string{sectionHeader("Publications & Achievements", width, pal), ""}
	bold := lipgloss.NewStyle().Bold(true).Foreground(pal.text)
	muted := lipgloss.NewStyle().Foreground(pal.muted)
	for _, paper := range pubs.Papers {
		lines = append(lines, bold.Render(paper.Title))
		if meta := joinNonEmpty(" · ", paper.Type, paper.Date); meta != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(pal.accentAlt).Render(meta))
		}
		lines = append(lines, wrapLines(paper.Summary, width)...)
		if len(paper.Metrics) > 0 {
			metrics := make([]string, 0, len(paper.Metrics))
			for _, metric := range paper.Metrics {
				metrics = append(metrics, metric.Key+": "+metric.Value)
			}
			lines = append(lines, lipgloss.NewStyle().Foreground(pal.success).Render(strings.Join(metrics, " · ")))
		}
		if len(paper.Keywords) > 0 {
			lines = append(lines, lipgloss.NewStyle().Foreground(pal.accent).Render(chips(paper.Keywords)))
		}
		for _, link := range paper.Links {
			lines = append(lines, muted.Render(link.Label+": "+linkTarget(link)))
		}
		if paper.Impact != "" {
			lines = append(lines, muted.Render("Impact: "+paper.Impact))
		}
		lines = append(lines, "")
	}
	if len(pubs.Certifications) > 0 {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(pal.accentAlt).Render("Certifications"))
		for _, cert := range pubs.Certifications {
			lines = append(lines, "◆ "+bold.Render(cert.Name)+" "+muted.Render(joinNonEmpty(" · ", cert.Issuer, cert.Date, cert.Type)))
		}
		lines = append(lines, "")
	}
	if len(pubs.Responsibilities) > 0 {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(pal.accentAlt).Render("Positions of Responsibility"))
		for _, resp := range pubs.Responsibilities {
			lines = append(lines, bold.Render(resp.Role)+muted.Render(" · "+joinNonEmpty(" · ", resp.Organization, resp.Duration)))
			lines = append(lines, wrapLines(resp.Description, width)...)
		}
	}
	return strings.Join(trimTrailingBlank(lines), "\n")
}

// renderSkills renders the skill filter bar, group cards, and hackathons.
func (m Model) renderSkills(width int, pal palette) string {
	lines := []string{sectionHeader(skillsTitle, width, pal), ""}
	lines = append(lines, renderFilterBar(m.skills.Categories(), m.skills.ActiveCategory(), m.focus == focusSkills, width, pal), "")
	view := m.skills.FilteredView()
	if len(view) > 0 {
		cols, inner := gridColumns(width, skillCardMin)
		cards := make([]string, 0, len(view))
		rows := 0
		for _, group := range view {
			rows = max(rows, len(group.Skills))
		}
		for idx, group := range view {
			selected := m.focus == focusSkills && idx == m.skills.Cursor()
			cards = append(cards, renderSkillCard(group, inner, rows, selected, pal))
		}
		lines = append(lines, joinGrid(cards, cols))
	}
	if len(m.portfolio.Hackathons) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Foreground(pal.accentAlt).Render("Hackathons & Competitions"))
		for _, hack := range m.portfolio.Hackathons {
			title := lipgloss.NewStyle().Bold(true).Foreground(pal.text).Render(hack.Name)
			if hack.Achievement != "" {
				title += " " + lipgloss.NewStyle().Foreground(pal.warning).Render("★ "+hack.Achievement)
			}
			lines = append(lines, title)
			if meta := joinNonEmpty(" · ", hack.Category, hack.Date); meta != "" {
				lines = append(lines, lipgloss.NewStyle().Foreground(pal.muted).Render(meta))
			}
			lines = append(lines, wrapLines(hack.Description, width)...)
			if len(hack.Technologies) > 0 {
				lines = append(lines, lipgloss.NewStyle().Foreground(pal.accent).Render(chips(hack.Technologies)))
			}
			lines = append(lines, "")
		}
	}
	return strings.Join(trimTrailingBlank(lines), "\n")
}

// renderSkillCard renders one skill group with percentage bars.
func renderSkillCard(group domain.SkillGroup, inner, rows int, selected bool, pal palette) string {
	accent := pal.groupAccent(group.Accent)
	border := pal.dim
	if selected {
		border = accent
	}
	barWidth := clamp(inner-20, 4, skillBarWidth)
	nameWidth := max(1, inner-barWidth-6)
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(accent).Render(padRight(truncate(group.Name, inner), inner))}
	for _, skill := range group.Skills {
		name := padRight(truncate(skill.Name, nameWidth), nameWidth)
		pct := fmt.Sprintf("%4d%%", domain.ClampLevel(skill.Level))
		lines = append(lines, name+" "+renderSkillBar(skill.Level, barWidth, accent, pal)+pct)
	}
	for i := len(group.Skills); i < rows; i++ {
		lines = append(lines, strings.Repeat(" ", inner))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderContact renders the footer and contact links.
func (m Model) renderContact(width int, pal palette) string {
	lines := []string{sectionHeader("Get In Touch", width, pal), ""}
	muted := lipgloss.NewStyle().Foreground(pal.muted)
	for _, link := range m.portfolio.ContactLinks() {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(pal.accent).Render(padRight(link.Label, 10))+muted.Render(linkTarget(link)))
	}
	if m.portfolio.Resume.URL != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(pal.accent).Render(padRight(m.portfolio.Resume.Label, 10))+muted.Render(linkTarget(m.portfolio.Resume)))
	}
	lines = append(lines, "")
	if m.portfolio.Credit != "" {
		lines = append(lines, muted.Render(m.portfolio.Credit))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(pal.dim).Render("© "+m.portfolio.Owner.Name+" · "+bindingKey(m.keys.top)+" back to top"))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderFilterBar renders category buttons with the active one highlighted.
func renderFilterBar(categories []string, active string, focused bool, width int, pal palette) string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.text).Background(pal.navScrolled).Padding(0, 1)
	if focused {
		activeStyle = activeStyle.Foreground(pal.accent)
	}
	idleStyle := lipgloss.NewStyle().Foreground(pal.muted).Padding(0, 1)
	rows := make([]string, 0, 2)
	for _, indices := range filterBarRows(categories, width) {
		buttons := make([]string, 0, len(indices))
		for _, idx := range indices {
			if categories[idx] == active {
				buttons = append(buttons, activeStyle.Render(categories[idx]))
				continue
			}
			buttons = append(buttons, idleStyle.Render(categories[idx]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	marker := "  "
	if focused {
		marker = lipgloss.NewStyle().Foreground(pal.accent).Render("▸ ")
	}
	return marker + strings.Join(rows, "\n  ")
}

// filterBarRows wraps filter buttons into rows no wider than width and returns
// the category indices on each row.
func filterBarRows(categories []string, width int) [][]int {
	rows := make([][]int, 0, 2)
	current := make([]int, 0, len(categories))
	used := 0
	for idx, category := range categories {
		w := filterButtonWidth(category)
		if used > 0 && used+w > width {
			rows = append(rows, current)
			current = make([]int, 0, len(categories))
			used = 0
		}
		current = append(current, idx)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}

// filterButtonWidth returns the rendered cell width of one filter button.
func filterButtonWidth(category string) int {
	return lipgloss.Width(category) + 2
}

// renderSkillBar renders a proportional bar for a 0..100 level.
func renderSkillBar(level, width int, fill color.Color, pal palette) string {
	filled := barFill(level, width)
	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(pal.barEmpty).Render(strings.Repeat("░", width-filled))
}

// barFill returns the filled cell count for level at width.
func barFill(level, width int) int {
	if width <= 0 {
		return 0
	}
	return domain.ClampLevel(level) * width / 100
}

// gridColumns returns the column count and card inner width for a grid.
func gridColumns(width, minCard int) (int, int) {
	cols := max(1, width/minCard)
	inner := width/cols - 4
	return cols, max(8, inner)
}

// joinGrid lays cards out in rows of cols.
func joinGrid(cards []string, cols int) string {
	if cols <= 0 {
		cols = 1
	}
	rows := make([]string, 0, (len(cards)+cols-1)/cols)
	for start := 0; start < len(cards); start += cols {
		end := min(len(cards), start+cols)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return strings.Join(rows, "\n")
}

// wrapLines word-wraps text to width and splits it into lines.
func wrapLines(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Split(wordwrap.String(text, max(1, width)), "\n")
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// chips renders tags as bracketed chips.
func chips(values []string) string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, "["+value+"]")
	}
	return strings.Join(out, " ")
}

// labelValue renders a bold label followed by a value.
func labelValue(label, value string, pal palette) string {
	return lipgloss.NewStyle().Bold(true).Foreground(pal.text).Render(label+": ") + lipgloss.NewStyle().Foreground(pal.muted).Render(value)
}

// linkTarget returns a display target, marking placeholders.
func linkTarget(link domain.Link) string {
	if link.IsPlaceholder() {
		return "coming soon"
	}
	target := link.URL
	for _, prefix := range []string{"mailto:", "tel:"} {
		target = strings.TrimPrefix(target, prefix)
	}
	return target
}

// joinNonEmpty joins the non-empty values with sep.
func joinNonEmpty(sep string, values ...string) string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return strings.Join(out, sep)
}

// trimTrailingBlank drops trailing empty lines.
func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// bindingKey returns the first help key of a binding.
func bindingKey(b key.Binding) string {
	return b.Help().Key
}

// filterLabel describes a browser's active filter for status lines.
func filterLabel[T browser.Entry](b *browser.Browser[T]) string {
	return fmt.Sprintf("%s (%d)", b.ActiveCategory(), len(b.FilteredView()))
}
