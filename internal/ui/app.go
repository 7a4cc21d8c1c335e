package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/strelow/gitref/internal/catalog"
	"github.com/strelow/gitref/internal/ui/components"
)

const (
	noticeTTL       = 2500 * time.Millisecond
	searchCharLimit = 128
)

// --- Messages ---

// CatalogReloadedMsg swaps the browsed catalog for a new one. The file
// watcher delivers it through Program.Send; filters and the view mode
// survive the swap.
type CatalogReloadedMsg struct {
	Catalog catalog.Catalog
}

// CatalogReloadFailedMsg reports a watched catalog file that no longer
// parses or validates. The browsed catalog is untouched; the failure
// stays on screen until a good reload replaces it.
type CatalogReloadFailedMsg struct {
	Err error
}

type noticeExpiredMsg struct{}

// --- App Model ---

// App is the root TUI model: a fixed catalog of commands browsed through
// a search box, category chips, and either a card stack or a compact table.
type App struct {
	catalog catalog.Catalog
	state   catalog.State
	logger  *zap.Logger

	chips []string
	chip  int

	input    textinput.Model
	viewport viewport.Model
	list     *components.List

	results     []catalog.Record
	cardOffsets []int
	compact     bool
	jumpID      string

	helpOpen  bool
	notice    string
	reloadErr string

	width  int
	height int
}

// NewApp creates the root application model over a loaded catalog.
func NewApp(cat catalog.Catalog, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "type to filter commands"
	input.CharLimit = searchCharLimit
	input.Prompt = "> "
	input.PromptStyle = AccentStyle
	input.PlaceholderStyle = MutedStyle

	a := App{
		catalog:  cat,
		state:    catalog.DefaultState(),
		logger:   logger,
		chips:    cat.Categories(),
		input:    input,
		viewport: viewport.New(80, 20),
		list:     components.NewList(12),
	}
	a.refreshResults()
	return a
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = components.BoxContentWidth(msg.Width) - 4
		a.resizeViewport()
		a.list.SetPageSize(a.compactRows())
		a.rebuildContent()
		return a, nil

	case CatalogReloadedMsg:
		a.catalog = msg.Catalog
		a.chips = a.catalog.Categories()
		if a.state.Category != catalog.AllCategories && !a.catalog.HasCategory(a.state.Category) {
			a.state.Category = catalog.AllCategories
		}
		a.chip = chipIndexOf(a.chips, a.state.Category)
		a.reloadErr = ""
		a.refreshResults()
		a.logger.Debug("catalog swapped",
			zap.Int("commands", len(a.catalog.Commands)),
			zap.Int("visible", len(a.results)))
		cmd := a.setNotice(fmt.Sprintf("Catalog reloaded (%s)", countText(len(a.catalog.Commands))))
		return a, cmd

	case CatalogReloadFailedMsg:
		a.reloadErr = components.SanitizeOneLine(msg.Err.Error())
		a.notice = ""
		return a, nil

	case noticeExpiredMsg:
		a.notice = ""
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.helpOpen {
		if isBack(msg) || isKey(msg, "?") {
			a.helpOpen = false
		}
		return a, nil
	}

	// While the search box has focus every printable key belongs to it;
	// only ctrl+c still quits, and esc or enter hand focus back.
	if a.input.Focused() {
		switch {
		case isKey(msg, "ctrl+c"):
			return a, tea.Quit
		case isBack(msg), isEnter(msg):
			a.input.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		if value := a.input.Value(); value != a.state.Search {
			a.state.Search = value
			a.refreshResults()
		}
		return a, cmd
	}

	// Global keys
	if isQuit(msg) {
		return a, tea.Quit
	}
	if isKey(msg, "?") {
		a.helpOpen = true
		return a, nil
	}
	if isKey(msg, "/") {
		// Consumed: the slash focuses the box without entering the text.
		cmd := a.input.Focus()
		return a, cmd
	}
	if isKey(msg, "v") {
		a.compact = !a.compact
		a.logger.Debug("view toggled", zap.Bool("compact", a.compact))
		return a, nil
	}

	// Category chips
	if idx, ok := chipIndexForKey(msg.String(), len(a.chips)); ok {
		a.setChip(idx)
		return a, nil
	}
	if isKey(msg, "right", "tab") {
		a.setChip((a.chip + 1) % len(a.chips))
		return a, nil
	}
	if isKey(msg, "left", "shift+tab") {
		a.setChip((a.chip - 1 + len(a.chips)) % len(a.chips))
		return a, nil
	}

	if a.compact {
		switch {
		case isUp(msg):
			a.list.Up()
		case isDown(msg):
			a.list.Down()
		case isKey(msg, "pgup"):
			a.list.PageUp()
		case isKey(msg, "pgdown"), isSpace(msg):
			a.list.PageDown()
		case isEnter(msg):
			return a.jumpToSelected()
		}
		return a, nil
	}

	switch {
	case isUp(msg):
		a.viewport.LineUp(1)
	case isDown(msg):
		a.viewport.LineDown(1)
	case isKey(msg, "pgup"):
		a.viewport.ViewUp()
	case isKey(msg, "pgdown"), isSpace(msg):
		a.viewport.ViewDown()
	case isKey(msg, "home", "g"):
		a.viewport.GotoTop()
	case isKey(msg, "end", "G"):
		a.viewport.GotoBottom()
	}
	return a, nil
}

// jumpToSelected leaves compact mode and scrolls the card stack to the
// row the cursor was on, highlighting that card.
func (a App) jumpToSelected() (tea.Model, tea.Cmd) {
	idx := a.list.Selected()
	if idx >= len(a.results) {
		return a, nil
	}
	a.compact = false
	a.jumpID = a.results[idx].ID
	a.rebuildContent()
	if idx < len(a.cardOffsets) {
		a.viewport.SetYOffset(a.cardOffsets[idx])
	}
	a.logger.Debug("jump to command", zap.String("id", a.jumpID))
	return a, nil
}

// shortWindow reports whether the terminal is too short for the banner to
// leave a usable card viewport.
func (a App) shortWindow() bool {
	return a.height > 0 && a.height < 24
}

// renderHeader picks the ASCII banner, or the one-line title on short windows.
func (a App) renderHeader() string {
	if a.shortWindow() {
		return RenderTitleLine()
	}
	return RenderBanner()
}

func (a App) View() string {
	banner := centerBlockUniform(a.renderHeader(), a.width)
	chips := centerBlockUniform(a.renderChips(), a.width)
	search := centerBlockUniform(a.renderSearch(), a.width)
	filters := centerBlockUniform(a.renderFilterLine(), a.width)

	var content string
	switch {
	case a.helpOpen:
		content = a.renderHelp()
	case len(a.results) == 0:
		content = a.renderEmpty()
	case a.compact:
		content = a.renderCompact()
	default:
		content = a.viewport.View()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	switch {
	case a.reloadErr != "":
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Catalog reload failed", a.reloadErr, a.width), a.width)
	case a.notice != "":
		feedback = "\n\n" + centerBlockUniform(components.Note(a.notice), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s\n\n\n%s%s", banner, chips, search, filters, content, hints, feedback)
}

// --- Model Mutations ---

func (a *App) setChip(idx int) {
	if idx < 0 || idx >= len(a.chips) {
		return
	}
	a.chip = idx
	a.state.Category = a.chips[idx]
	a.refreshResults()
}

func (a *App) refreshResults() {
	a.results = a.catalog.Filter(a.state)

	ids := make([]string, len(a.results))
	for i, r := range a.results {
		ids[i] = r.ID
	}
	a.list.SetItems(ids)

	if a.jumpID != "" && recordIndex(a.results, a.jumpID) < 0 {
		a.jumpID = ""
	}
	a.rebuildContent()
	a.viewport.GotoTop()
}

func (a *App) rebuildContent() {
	blocks := make([]string, 0, len(a.results))
	offsets := make([]int, 0, len(a.results))
	line := 0
	for _, r := range a.results {
		card := a.renderCard(r, r.ID == a.jumpID)
		offsets = append(offsets, line)
		line += lipgloss.Height(card) + 1
		blocks = append(blocks, card)
	}
	a.cardOffsets = offsets
	a.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (a *App) resizeViewport() {
	chrome := lipgloss.Height(a.renderHeader()) + 8
	h := a.height - chrome
	if h < 5 {
		h = 5
	}
	a.viewport.Width = a.width
	a.viewport.Height = h
}

func (a *App) setNotice(text string) tea.Cmd {
	a.notice = components.SanitizeOneLine(text)
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func (a App) compactRows() int {
	rows := a.viewport.Height - 6
	if rows < 3 {
		rows = 3
	}
	return rows
}

// --- Rendering ---

func (a App) renderChips() string {
	segments := make([]string, 0, len(a.chips))
	for i, name := range a.chips {
		if i == a.chip {
			segments = append(segments, ChipActiveStyle.Render(name))
		} else {
			segments = append(segments, ChipInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) renderSearch() string {
	if a.input.Focused() {
		return components.ActiveBox(a.input.View(), a.width)
	}
	return components.Box(a.input.View(), a.width)
}

func (a App) renderFilterLine() string {
	line := MutedStyle.Render(countText(len(a.results)))
	if !a.state.HasFilters() {
		return line
	}

	parts := make([]string, 0, 2)
	if a.state.Category != catalog.AllCategories {
		parts = append(parts,
			FilterKeyStyle.Render("Category: ")+
				FilterValueStyle.Render(components.SanitizeOneLine(a.state.Category)))
	}
	if query := strings.TrimSpace(a.state.Search); query != "" {
		parts = append(parts,
			FilterKeyStyle.Render("Search: ")+
				FilterValueStyle.Render(components.SanitizeOneLine(query)))
	}
	if len(parts) == 0 {
		return line
	}
	return line + "   " + NormalStyle.Render("Filtering by ") + strings.Join(parts, FilterPunctStyle.Render(" · "))
}

// renderCard draws one command as a titled box: badge line, description,
// then the syntax block, examples, and any notes.
func (a App) renderCard(r catalog.Record, active bool) string {
	contentWidth := components.BoxContentWidth(a.width)

	var b strings.Builder
	b.WriteString(CategoryBadgeStyle.Render(components.SanitizeOneLine(r.Category)))
	b.WriteString("  ")
	b.WriteString(MutedStyle.Render(components.SanitizeOneLine(r.ID)))
	b.WriteString("\n\n")
	b.WriteString(components.SanitizeText(r.Description))
	b.WriteString("\n")
	b.WriteString(Divider(contentWidth))
	b.WriteString("\n")
	for _, line := range strings.Split(components.SanitizeText(r.Syntax), "\n") {
		b.WriteString(AccentStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FilterKeyStyle.Render("Examples"))
	for _, example := range r.Examples {
		b.WriteString("\n  ")
		b.WriteString(components.SanitizeText(example))
	}
	if r.HasNotes() {
		b.WriteString("\n\n")
		b.WriteString(FilterKeyStyle.Render("Notes"))
		for _, note := range r.Notes {
			b.WriteString("\n  ")
			b.WriteString(WarningStyle.Render(components.SanitizeText(note)))
		}
	}

	title := components.SanitizeOneLine(r.Title)
	if active {
		return components.ActiveTitledBox(title, b.String(), a.width)
	}
	return components.TitledBox(title, b.String(), a.width)
}

func (a App) renderCompact() string {
	columns := []components.TableColumn{
		{Header: "ID", Width: 18},
		{Header: "Category", Width: 12},
		{Header: "Title", Width: 0},
	}

	start := a.list.Offset
	end := start + a.list.PageSize
	if end > len(a.results) {
		end = len(a.results)
	}
	rows := make([][]string, 0, end-start)
	for _, r := range a.results[start:end] {
		rows = append(rows, []string{r.ID, r.Category, r.Title})
	}

	grid := components.TableGrid(columns, rows, components.BoxContentWidth(a.width), a.list.Selected()-a.list.Offset)
	position := MutedStyle.Render(fmt.Sprintf("%d of %d", a.list.Selected()+1, len(a.results)))
	return grid + "\n" + components.CenterLine(position, a.width)
}

func (a App) renderEmpty() string {
	lines := []string{MutedStyle.Render("No commands match your filters.")}
	if title, ok := a.catalog.Suggest(a.state.Search); ok {
		lines = append(lines, "")
		lines = append(lines, MutedStyle.Render("Closest match: ")+SelectedStyle.Render(components.SanitizeOneLine(title)))
	}
	return components.Indent(components.TitledBox("No Results", strings.Join(lines, "\n"), a.width), 1)
}

func (a App) renderHelp() string {
	rows := []components.TableRow{
		{Label: "/", Value: "Focus the search box"},
		{Label: "esc / enter", Value: "Leave the search box"},
		{Label: "←/→, tab", Value: "Switch category"},
		{Label: "1-9", Value: "Jump to a category"},
		{Label: "↑/↓", Value: "Scroll"},
		{Label: "pgup/pgdn", Value: "Page"},
		{Label: "v", Value: "Toggle compact view"},
		{Label: "enter", Value: "Open the selected command"},
		{Label: "?", Value: "Toggle this help"},
		{Label: "q", Value: "Quit"},
	}
	return components.Indent(components.Table("Help", rows, a.width), 1)
}

func (a App) statusHints() []string {
	if a.helpOpen {
		return []string{
			components.Hint("esc", "Back"),
		}
	}
	if a.input.Focused() {
		return []string{
			components.Hint("enter", "Done"),
			components.Hint("esc", "Done"),
			components.Hint("ctrl+c", "Quit"),
		}
	}
	base := []string{
		components.Hint("/", "Search"),
		components.Hint("←/→", "Category"),
	}
	if a.compact {
		return append(base,
			components.Hint("↑/↓", "Move"),
			components.Hint("enter", "Open"),
			components.Hint("v", "Cards"),
			components.Hint("?", "Help"),
			components.Hint("q", "Quit"),
		)
	}
	return append(base,
		components.Hint("↑/↓", "Scroll"),
		components.Hint("v", "Compact"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	)
}

// --- Helpers ---

func countText(n int) string {
	if n == 1 {
		return "1 command"
	}
	return fmt.Sprintf("%d commands", n)
}

func chipIndexOf(chips []string, category string) int {
	for i, c := range chips {
		if c == category {
			return i
		}
	}
	return 0
}

func recordIndex(records []catalog.Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
