// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for the superadmin console.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// The store owns the admin collection and list state; the screens here only
// issue store operations and re-render from its projection.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"superadmin/internal/admin"
	"superadmin/internal/config"
	"superadmin/internal/export"
	"superadmin/internal/logbook"
	"superadmin/internal/seed"
)

// appState represents which "screen" we're on
type appState int

const (
	stateAdminList   appState = iota // Searchable, paginated admin table
	stateAdminDetail                 // Read-only profile for the focused admin
	stateAdminForm                   // Create/edit form
)

type paneFocus int

const (
	focusMenu paneFocus = iota
	focusContent
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock overrides the clock used for record timestamps and export names.
func WithClock(clock func() time.Time) AppOption {
	return func(a *App) {
		if clock != nil {
			a.now = clock
		}
	}
}

// WithDataset overrides the seed dataset loaded at startup.
func WithDataset(ds seed.Dataset) AppOption {
	return func(a *App) {
		a.dataset = &ds
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state  appState
	config *config.Config
	store  *admin.Store

	// societies is the fixed catalog available for assignment.
	societies []admin.Society

	logbook *logbook.Logbook
	now     func() time.Time
	dataset *seed.Dataset

	// UI components
	menu      list.Model // Sidebar navigation menu
	focus     paneFocus
	listView  *listView
	formView  *formView
	statusMsg string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for the sidebar entries
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App instance rooted at the given project directory.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}

	app := &App{
		state:  stateAdminList,
		config: cfg,
		now:    time.Now,
		focus:  focusContent,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	ds := seed.Dataset{}
	if app.dataset != nil {
		ds = *app.dataset
	} else {
		ds, err = seed.Load(cfg.SeedPath(), app.now())
		if err != nil {
			return nil, err
		}
	}
	app.societies = ds.Societies
	app.store = admin.NewStore(ds.Admins,
		admin.WithClock(app.now),
		admin.WithQuery(admin.Query{
			Status:    cfg.File.List.StatusFilter,
			SortBy:    admin.SortKey(cfg.File.List.SortBy),
			SortOrder: admin.SortOrder(cfg.File.List.SortOrder),
			Page:      1,
		}),
	)

	lb, err := logbook.New(cfg.LogsDir()+"/console.log", logbook.WithClock(app.now))
	if err == nil {
		app.logbook = lb
		lb.Info("Session opened · %d admins, %d societies", app.store.Len(), len(app.societies))
	}

	menu := list.New(buildMenu(), list.NewDefaultDelegate(), 0, 0)
	menu.Title = "⬢ SUPER ADMIN"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.Select(1) // Platform Admins is the live screen
	app.menu = menu

	app.listView = newListView(app)
	return app, nil
}

// buildMenu creates the sidebar entries. Only Platform Admins is wired; the
// rest mirror the product navigation and report themselves unimplemented.
func buildMenu() []list.Item {
	return []list.Item{
		menuItem{title: "Dashboard", desc: "Platform overview"},
		menuItem{title: "Platform Admins", desc: "Manage administrator accounts"},
		menuItem{title: "Analytics", desc: "Usage and performance"},
		menuItem{title: "Notifications", desc: "Platform alerts"},
		menuItem{title: "Settings", desc: "Configure the console"},
		menuItem{title: "Exit", desc: "Quit the console"},
	}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(max(0, sidebarWidth-4), max(0, msg.Height-10))
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global bindings first.
	switch key {
	case "ctrl+c":
		return a, tea.Quit
	}

	switch a.state {
	case stateAdminList:
		if a.focus == focusMenu {
			return a.handleMenuKey(msg)
		}
		return a.listView.handleKey(msg)
	case stateAdminDetail:
		return a.handleDetailKey(msg)
	case stateAdminForm:
		return a.formView.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "tab", "right", "l", "esc":
		a.focus = focusContent
		return a, nil
	case "enter":
		return a.handleMenuSelection()
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

// handleMenuSelection processes sidebar item selection
func (a *App) handleMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.menu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}

	switch item.title {
	case "Platform Admins":
		a.logInfo("Menu · Platform Admins selected")
		a.focus = focusContent
		a.statusMsg = ""
	case "Exit":
		a.logInfo("Menu · Exit selected")
		return a, tea.Quit
	default:
		a.logInfo("Menu · %s selected", item.title)
		a.statusMsg = "Not implemented yet"
	}
	return a, nil
}

// openDetail focuses the admin and switches to the profile screen.
func (a *App) openDetail(ad admin.Admin) {
	a.store.SetFocusedAdmin(&ad)
	a.state = stateAdminDetail
	a.statusMsg = ""
}

// returnToList transitions back to the admin table.
func (a *App) returnToList() {
	a.state = stateAdminList
	a.formView = nil
	a.store.SetFocusedAdmin(nil)
}

// openForm switches to the create form (editing == nil) or the edit form.
func (a *App) openForm(editing *admin.Admin) {
	a.formView = newFormView(a, editing)
	a.state = stateAdminForm
	a.statusMsg = ""
}

// exportList writes the full filtered+sorted collection to a CSV file.
func (a *App) exportList() {
	records := admin.Matching(a.store.Admins(), a.store.Query())
	path, err := export.WriteCSV(a.config.ExportDir(), records, a.now())
	if err != nil {
		a.statusMsg = fmt.Sprintf("Export failed: %v", err)
		a.logError("Export failed: %v", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Exported %d admins to %s", len(records), path)
	a.logInfo("Exported %d admins to %s", len(records), path)
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 120
	}
	contentWidth := width - sidebarWidth - 6
	if contentWidth < 40 {
		contentWidth = width - 4
	}

	var content string
	switch a.state {
	case stateAdminList:
		content = a.listView.render(contentWidth)
	case stateAdminDetail:
		content = a.renderDetail(contentWidth)
	case stateAdminForm:
		content = a.formView.render(contentWidth)
	}

	return a.renderFrame(content, contentWidth)
}

const sidebarWidth = 32

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	focusedBoxStyle = boxStyle.
			BorderForeground(lipgloss.Color("#5B8DEF"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	strongStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EEEEEE"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func (a *App) renderFrame(content string, contentWidth int) string {
	header := headerStyle.Render("⬢ SUPERADMIN · Platform Management")

	sidebar := a.renderSidebar()
	sidebarBox := boxStyle.Width(sidebarWidth).Render(sidebar)
	if a.focus == focusMenu && a.state == stateAdminList {
		sidebarBox = focusedBoxStyle.Width(sidebarWidth).Render(sidebar)
	}

	contentBox := boxStyle.Width(max(40, contentWidth)).Render(content)
	if a.focus == focusContent || a.state != stateAdminList {
		contentBox = focusedBoxStyle.Width(max(40, contentWidth)).Render(content)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebarBox, contentBox)

	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := subtleStyle.MarginTop(1).Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderSidebar() string {
	a.menu.SetSize(sidebarWidth-4, max(10, a.height-14))
	summary := a.renderSummaryPanel()
	return lipgloss.JoinVertical(lipgloss.Left, a.menu.View(), "", summary)
}

// renderSummaryPanel shows collection counts under the menu so the sidebar
// doubles as a tiny dashboard.
func (a *App) renderSummaryPanel() string {
	var active, inactive, pending int
	for _, ad := range a.store.Admins() {
		switch ad.Status {
		case admin.StatusActive:
			active++
		case admin.StatusInactive:
			inactive++
		case admin.StatusPending:
			pending++
		}
	}
	lines := []string{
		strongStyle.Render("Accounts"),
		fmt.Sprintf("Active    %d", active),
		fmt.Sprintf("Inactive  %d", inactive),
		fmt.Sprintf("Pending   %d", pending),
	}
	if n := a.store.SelectedCount(); n > 0 {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("Selected  %d", n)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG · console.log")
	body := labelStyle.Render(strings.Join(lines, "\n"))
	return boxStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

// statusBadge renders the colored status label used on every screen.
func statusBadge(s admin.Status) string {
	var color lipgloss.Color
	switch s {
	case admin.StatusActive:
		color = lipgloss.Color("#4CAF50")
	case admin.StatusInactive:
		color = lipgloss.Color("#FF6B6B")
	default:
		color = lipgloss.Color("#F7B801")
	}
	label := titleCase(string(s))
	return lipgloss.NewStyle().Foreground(color).Render("● " + label)
}

// initials builds the avatar text shown next to a name ("Sarah Johnson" -> "SJ").
func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		if len(runes) > 0 {
			b.WriteRune(runes[0])
		}
	}
	return strings.ToUpper(b.String())
}

func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func humanizeDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
