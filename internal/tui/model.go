package tui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/folio/internal/browser"
	"github.com/evanschultz/folio/internal/domain"
	"github.com/evanschultz/folio/internal/reveal"
)

// focusArea represents which browser receives filter and card keys.
type focusArea int

// focusNone and related constants define the focus cycle.
const (
	focusNone focusArea = iota
	focusProjects
	focusSkills
)

// String returns a readable focus label.
func (f focusArea) String() string {
	switch f {
	case focusProjects:
		return "projects"
	case focusSkills:
		return "skills"
	default:
		return "page"
	}
}

// scrolling constants used by update logic.
const (
	scrollTickInterval = 16 * time.Millisecond
	scrollEaseDivisor  = 3
	wheelStep          = 3
	chromeRows         = 3
)

// Model represents the portfolio page and every piece of ephemeral view state.
type Model struct {
	portfolio domain.Portfolio
	projects  *browser.Browser[domain.Project]
	skills    *browser.Browser[domain.SkillGroup]
	tracker   *reveal.Tracker
	md        *markdownRenderer

	help help.Model
	keys keyMap

	theme           ThemeMode
	detailPolicy    browser.DetailPolicy
	revealThreshold float64
	smoothScroll    bool
	copyFn          CopyFunc
	reloadFn        ReloadFunc

	ready  bool
	width  int
	height int

	offset       int
	scrollTarget int
	scrollSeq    int
	animating    bool

	menuOpen  bool
	menuIndex int
	focus     focusArea

	status string
	err    error
}

// scrollTickMsg advances one smooth-scroll animation step.
type scrollTickMsg struct {
	seq int
}

// copiedMsg carries the result of one clipboard write.
type copiedMsg struct {
	what string
	err  error
}

// contentLoadedMsg carries content loaded through the reload callback.
type contentLoadedMsg struct {
	portfolio domain.Portfolio
	err       error
}

// NewModel constructs a new value for this package.
func NewModel(portfolio domain.Portfolio, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	m := Model{
		md:              &markdownRenderer{},
		help:            h,
		keys:            newKeyMap(),
		theme:           ThemeDark,
		detailPolicy:    browser.DetailPolicyClose,
		revealThreshold: reveal.DefaultThreshold,
		smoothScroll:    true,
		status:          "ready",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	m.resetContent(portfolio)
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case scrollTickMsg:
		if msg.seq != m.scrollSeq || !m.animating {
			return m, nil
		}
		diff := m.scrollTarget - m.offset
		step := diff / scrollEaseDivisor
		if step == 0 {
			step = sign(diff)
		}
		m.offset += step
		m.observe()
		if m.offset == m.scrollTarget {
			m.animating = false
			return m, nil
		}
		return m, m.scrollTick()

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "copied " + msg.what
		return m, nil

	case contentLoadedMsg:
		if msg.err != nil {
			if m.err != nil {
				m.err = msg.err
			}
			m.status = "reload failed: " + msg.err.Error()
			return m, nil
		}
		m.err = nil
		m.resetContent(msg.portfolio)
		m.observe()
		m.status = "content reloaded"
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		if m.err != nil {
			return m, nil
		}
		return m.handleMouseWheel(msg)

	case tea.MouseClickMsg:
		if m.err != nil {
			return m, nil
		}
		return m.handleMouseClick(msg)

	default:
		return m, nil
	}
}

// View handles view.
func (m Model) View() tea.View {
	if m.err != nil {
		v := tea.NewView("error: " + m.err.Error() + "\n\npress r to retry • q quit\n")
		v.MouseMode = tea.MouseModeCellMotion
		v.AltScreen = true
		return v
	}
	if !m.ready {
		v := tea.NewView("loading...")
		v.MouseMode = tea.MouseModeCellMotion
		v.AltScreen = true
		return v
	}

	pal := m.theme.palette()
	p := m.buildPage()
	nav := m.renderNav(pal, p.sectionAt(m.offset))
	body := m.renderBody(p)

	helpBubble := m.help
	helpBubble.ShowAll = false
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := lipgloss.NewStyle().
		Foreground(pal.muted).
		Padding(0, 1).
		Render(helpBubble.View(m.keys))

	content := strings.Join([]string{nav, body, m.renderStatusLine(pal), fitLines(helpLine, 1)}, "\n")
	if overlay := m.renderOverlay(pal); overlay != "" {
		content = overlayOnContent(content, overlay, m.width, m.height)
	}
	v := tea.NewView(content)
	v.MouseMode = tea.MouseModeCellMotion
	v.AltScreen = true
	return v
}

// renderBody renders the visible page rows with unrevealed sections blanked.
func (m Model) renderBody(p page) string {
	rows := m.bodyHeight()
	lines := make([]string, 0, rows)
	for row := m.offset; row < m.offset+rows; row++ {
		lines = append(lines, m.lineAt(p, row))
	}
	return strings.Join(lines, "\n")
}

// lineAt returns one page row, or a placeholder when its section is not revealed.
func (m Model) lineAt(p page, row int) string {
	for _, section := range p.sections {
		if row < section.start || row >= section.start+len(section.lines) {
			continue
		}
		if !m.tracker.Revealed(section.id.key()) {
			return ""
		}
		return section.lines[row-section.start]
	}
	return ""
}

// renderStatusLine renders the status text and current focus.
func (m Model) renderStatusLine(pal palette) string {
	right := m.theme.String() + " · " + m.focus.String()
	switch m.focus {
	case focusProjects:
		right += " " + filterLabel(m.projects)
	case focusSkills:
		right += " " + filterLabel(m.skills)
	}
	left := truncate(m.status, max(0, m.width-lipgloss.Width(right)-3))
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return lipgloss.NewStyle().Foreground(pal.dim).Render(" " + left + strings.Repeat(" ", gap) + right)
}

// renderOverlay returns the active modal, if any.
func (m Model) renderOverlay(pal palette) string {
	switch {
	case m.help.ShowAll:
		return m.renderHelpOverlay(pal, m.width-8)
	case m.projects.DetailOpen():
		project, _ := m.projects.Detail()
		return m.renderDetailOverlay(project, pal)
	case m.menuOpen:
		return m.renderMenuOverlay(pal)
	default:
		return ""
	}
}

// handleKey routes one key press by the active overlay.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}
	if m.err != nil {
		if key.Matches(msg, m.keys.reload) {
			return m, m.reloadCmd()
		}
		return m, nil
	}
	if m.help.ShowAll {
		if key.Matches(msg, m.keys.toggleHelp, m.keys.closeOverlay) {
			m.help.ShowAll = false
		}
		return m, nil
	}
	if m.menuOpen {
		return m.handleMenuKey(msg)
	}
	if m.projects.DetailOpen() {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = true
		return m, nil
	case key.Matches(msg, m.keys.reload):
		return m, m.reloadCmd()
	case key.Matches(msg, m.keys.scrollUp):
		m.scrollBy(-1)
		return m, nil
	case key.Matches(msg, m.keys.scrollDown):
		m.scrollBy(1)
		return m, nil
	case key.Matches(msg, m.keys.pageUp):
		m.scrollBy(-m.bodyHeight())
		return m, nil
	case key.Matches(msg, m.keys.pageDown):
		m.scrollBy(m.bodyHeight())
		return m, nil
	case key.Matches(msg, m.keys.top):
		m.status = "back to top"
		return m, m.scrollTo(0)
	case key.Matches(msg, m.keys.bottom):
		return m, m.scrollTo(m.maxOffset(m.buildPage()))
	case key.Matches(msg, m.keys.jumpSection):
		return m, m.jumpTo(sectionFromKey(msg.String()))
	case key.Matches(msg, m.keys.toggleTheme):
		m.theme = m.theme.Toggle()
		m.status = "theme: " + m.theme.String()
		return m, nil
	case key.Matches(msg, m.keys.menu):
		m.menuOpen = true
		m.menuIndex = int(m.buildPage().sectionAt(m.offset))
		return m, nil
	case key.Matches(msg, m.keys.focusNext):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.focusPrev):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, m.keys.prevCategory):
		m.stepCategory(-1)
		return m, nil
	case key.Matches(msg, m.keys.nextCategory):
		m.stepCategory(1)
		return m, nil
	case key.Matches(msg, m.keys.cardLeft):
		m.moveCard(-1)
		return m, nil
	case key.Matches(msg, m.keys.cardRight):
		m.moveCard(1)
		return m, nil
	case key.Matches(msg, m.keys.openDetail):
		m.openDetail()
		return m, nil
	case key.Matches(msg, m.keys.closeOverlay):
		if m.focus != focusNone {
			m.focus = focusNone
			m.status = "focus cleared"
		}
		return m, nil
	case key.Matches(msg, m.keys.copyLink):
		return m, m.copyProjectLink()
	case key.Matches(msg, m.keys.resume):
		return m, m.copyResumeLink()
	default:
		return m, nil
	}
}

// handleMenuKey handles keys while the navigation menu is open.
func (m Model) handleMenuKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.closeOverlay, m.keys.menu):
		m.menuOpen = false
		return m, nil
	case key.Matches(msg, m.keys.scrollUp):
		m.menuIndex = wrapIndex(m.menuIndex, -1, len(sectionSpecs))
		return m, nil
	case key.Matches(msg, m.keys.scrollDown):
		m.menuIndex = wrapIndex(m.menuIndex, 1, len(sectionSpecs))
		return m, nil
	case key.Matches(msg, m.keys.openDetail):
		m.menuOpen = false
		return m, m.jumpTo(sectionID(m.menuIndex))
	case key.Matches(msg, m.keys.jumpSection):
		m.menuOpen = false
		return m, m.jumpTo(sectionFromKey(msg.String()))
	case key.Matches(msg, m.keys.toggleTheme):
		m.theme = m.theme.Toggle()
		m.status = "theme: " + m.theme.String()
		return m, nil
	case key.Matches(msg, m.keys.resume):
		m.menuOpen = false
		return m, m.copyResumeLink()
	default:
		return m, nil
	}
}

// handleDetailKey handles keys while the project detail overlay is open.
func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.closeOverlay, m.keys.closeDetail):
		m.projects.CloseDetail()
		m.status = "details closed"
		return m, nil
	case key.Matches(msg, m.keys.copyLink):
		return m, m.copyProjectLink()
	case key.Matches(msg, m.keys.resume):
		return m, m.copyResumeLink()
	case key.Matches(msg, m.keys.prevCategory):
		m.stepCategory(-1)
		return m, nil
	case key.Matches(msg, m.keys.nextCategory):
		m.stepCategory(1)
		return m, nil
	case key.Matches(msg, m.keys.cardLeft, m.keys.cardRight):
		delta := 1
		if key.Matches(msg, m.keys.cardLeft) {
			delta = -1
		}
		idx, _ := m.projects.DetailIndex()
		next := clamp(idx+delta, 0, len(m.projects.FilteredView())-1)
		if m.projects.OpenDetail(next) {
			if project, ok := m.projects.Detail(); ok {
				m.status = "details: " + project.Title
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.toggleTheme):
		m.theme = m.theme.Toggle()
		m.status = "theme: " + m.theme.String()
		return m, nil
	default:
		return m, nil
	}
}

// handleMouseWheel handles mouse wheel.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll || m.projects.DetailOpen() {
		return m, nil
	}
	if m.menuOpen {
		switch msg.Button {
		case tea.MouseWheelUp:
			m.menuIndex = wrapIndex(m.menuIndex, -1, len(sectionSpecs))
		case tea.MouseWheelDown:
			m.menuIndex = wrapIndex(m.menuIndex, 1, len(sectionSpecs))
		}
		return m, nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.scrollBy(-wheelStep)
	case tea.MouseWheelDown:
		m.scrollBy(wheelStep)
	}
	return m, nil
}

// handleMouseClick handles mouse click.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll {
		return m, nil
	}
	pal := m.theme.palette()
	if project, ok := m.projects.Detail(); ok {
		x, y, w, h := m.overlayBox(m.renderDetailOverlay(project, pal))
		if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
			m.projects.CloseDetail()
			m.status = "details closed"
		}
		return m, nil
	}
	if m.menuOpen {
		x, y, w, h := m.overlayBox(m.renderMenuOverlay(pal))
		if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
			m.menuOpen = false
			return m, nil
		}
		// entries start three rows below the box top.
		idx := msg.Y - y - 3
		if idx >= 0 && idx < len(sectionSpecs) {
			m.menuOpen = false
			return m, m.jumpTo(sectionID(idx))
		}
		return m, nil
	}
	p := m.buildPage()
	if msg.Y == 0 {
		for _, item := range m.navItems(m.width, p.sectionAt(m.offset)) {
			if msg.X >= item.start && msg.X < item.end {
				return m, m.jumpTo(item.id)
			}
		}
		return m, nil
	}
	// The body starts below the one-row nav bar.
	if msg.Y > m.bodyHeight() {
		return m, nil
	}
	row := m.offset + msg.Y - 1
	id := p.sectionAt(row)
	if !m.tracker.Revealed(id.key()) {
		return m, nil
	}
	for _, section := range p.sections {
		if section.id == id {
			m.clickBrowser(id, section.lines, row-section.start, msg.X)
			break
		}
	}
	return m, nil
}

// resetContent replaces the portfolio and resets every piece of view state.
func (m *Model) resetContent(portfolio domain.Portfolio) {
	m.portfolio = portfolio
	m.projects = browser.New(portfolio.Projects, browser.WithDetailPolicy(m.detailPolicy))
	m.skills = browser.New(portfolio.Skills, browser.WithDetailPolicy(m.detailPolicy))
	m.tracker = reveal.NewTracker(m.revealThreshold)
	m.offset = 0
	m.scrollTarget = 0
	m.scrollSeq++
	m.animating = false
	m.menuOpen = false
	m.menuIndex = 0
	m.focus = focusNone
	m.help.ShowAll = false
}

// bodyHeight returns the number of page rows visible between the nav bar and footer.
func (m Model) bodyHeight() int {
	return max(1, m.height-chromeRows)
}

// maxOffset returns the largest scroll offset for p.
func (m Model) maxOffset(p page) int {
	return max(0, p.total-m.bodyHeight())
}

// observe feeds the current viewport to the reveal tracker.
func (m *Model) observe() {
	if !m.ready {
		return
	}
	p := m.buildPage()
	m.tracker.Observe(reveal.Span{Start: m.offset, Height: m.bodyHeight()}, p.bounds())
}

// clampOffset keeps the offset within the page after layout changes.
func (m *Model) clampOffset() {
	p := m.buildPage()
	m.offset = clamp(m.offset, 0, m.maxOffset(p))
	if m.animating {
		m.scrollTarget = clamp(m.scrollTarget, 0, m.maxOffset(p))
	}
	m.observe()
}

// scrollBy moves the offset immediately and cancels any animation.
func (m *Model) scrollBy(delta int) {
	m.animating = false
	m.scrollSeq++
	m.offset += delta
	m.clampOffset()
}

// scrollTo moves to target, animating when smooth scrolling is enabled.
func (m *Model) scrollTo(target int) tea.Cmd {
	target = clamp(target, 0, m.maxOffset(m.buildPage()))
	m.scrollSeq++
	if !m.smoothScroll || target == m.offset {
		m.animating = false
		m.offset = target
		m.observe()
		return nil
	}
	m.scrollTarget = target
	m.animating = true
	return m.scrollTick()
}

// scrollTick schedules the next animation step for the current sequence.
func (m Model) scrollTick() tea.Cmd {
	seq := m.scrollSeq
	return tea.Tick(scrollTickInterval, func(time.Time) tea.Msg {
		return scrollTickMsg{seq: seq}
	})
}

// jumpTo scrolls to a section start.
func (m *Model) jumpTo(id sectionID) tea.Cmd {
	if id < sectionHome || int(id) >= len(sectionSpecs) {
		return nil
	}
	m.status = "→ " + id.label()
	return m.scrollTo(m.buildPage().sectionStart(id))
}

// cycleFocus moves focus between the projects and skills browsers.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	switch {
	case m.focus == focusNone && delta < 0:
		m.focus = focusSkills
	case m.focus == focusNone:
		m.focus = focusProjects
	case m.focus == focusProjects:
		m.focus = focusSkills
	default:
		m.focus = focusProjects
	}
	m.status = "focus: " + m.focus.String()
	if m.focus == focusSkills {
		return m.jumpTo(sectionSkills)
	}
	return m.jumpTo(sectionProjects)
}

// stepCategory changes the focused browser's category.
func (m *Model) stepCategory(delta int) {
	if m.focus == focusSkills {
		if delta < 0 {
			m.skills.PrevCategory()
		} else {
			m.skills.NextCategory()
		}
		m.status = "skills: " + filterLabel(m.skills)
		m.clampOffset()
		return
	}
	m.focus = focusProjects
	if delta < 0 {
		m.projects.PrevCategory()
	} else {
		m.projects.NextCategory()
	}
	m.status = "projects: " + filterLabel(m.projects)
	m.clampOffset()
}

// moveCard moves the focused browser's card cursor.
func (m *Model) moveCard(delta int) {
	if m.focus == focusSkills {
		m.skills.MoveCursor(delta)
		if group, ok := m.skills.CursorItem(); ok {
			m.status = "skills: " + group.Name
		}
		return
	}
	m.focus = focusProjects
	m.projects.MoveCursor(delta)
	if project, ok := m.projects.CursorItem(); ok {
		m.status = "project: " + project.Title
	}
}

// openDetail opens the project under the cursor.
func (m *Model) openDetail() {
	if m.focus == focusSkills {
		m.status = "details are available for projects"
		return
	}
	if !m.projects.OpenDetail(m.projects.Cursor()) {
		m.status = "no project selected"
		return
	}
	m.focus = focusProjects
	if project, ok := m.projects.Detail(); ok {
		m.status = "details: " + project.Title
	}
}

// selectedProject returns the detail project, or the project under the cursor.
func (m Model) selectedProject() (domain.Project, bool) {
	if project, ok := m.projects.Detail(); ok {
		return project, true
	}
	if m.focus == focusSkills {
		return domain.Project{}, false
	}
	return m.projects.CursorItem()
}

// copyProjectLink copies the selected project's repository link.
func (m *Model) copyProjectLink() tea.Cmd {
	project, ok := m.selectedProject()
	if !ok {
		m.status = "no project selected"
		return nil
	}
	if project.Repository.IsPlaceholder() {
		m.status = "no repository link for " + project.Title
		return nil
	}
	return m.copyCmd(project.Repository.URL, "repository link for "+project.Title)
}

// copyResumeLink copies the resume link.
func (m *Model) copyResumeLink() tea.Cmd {
	if m.portfolio.Resume.IsPlaceholder() {
		m.status = "no resume link configured"
		return nil
	}
	return m.copyCmd(m.portfolio.Resume.URL, "resume link")
}

// copyCmd writes text through the copy callback.
func (m *Model) copyCmd(text, what string) tea.Cmd {
	if m.copyFn == nil {
		m.status = "clipboard unavailable"
		return nil
	}
	fn := m.copyFn
	return func() tea.Msg {
		return copiedMsg{what: what, err: fn(text)}
	}
}

// reloadCmd loads content through the reload callback.
func (m *Model) reloadCmd() tea.Cmd {
	if m.reloadFn == nil {
		m.status = "reload unavailable"
		return nil
	}
	m.status = "reloading..."
	fn := m.reloadFn
	return func() tea.Msg {
		portfolio, err := fn()
		return contentLoadedMsg{portfolio: portfolio, err: err}
	}
}

// sectionFromKey maps a number key onto a section.
func sectionFromKey(raw string) sectionID {
	if len(raw) != 1 || raw[0] < '1' || raw[0] > '9' {
		return -1
	}
	return sectionID(raw[0] - '1')
}

// sign returns -1, 0, or 1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// wrapIndex wraps an index delta across total entries.
func wrapIndex(current int, delta int, total int) int {
	if total <= 0 {
		return 0
	}
	next := current + delta
	for next < 0 {
		next += total
	}
	for next >= total {
		next -= total
	}
	return next
}

// clamp clamps the requested operation.
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// max returns the larger of the provided values.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// min returns the smaller of the provided values.
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// fitLines fits lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent overlays on content.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centeredOverlay := lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlay,
	)
	overlayLayer := lipgloss.NewLayer(centeredOverlay).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate truncates the requested operation.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[:max])
	}
	return string(rs[:max-1]) + "…"
}
