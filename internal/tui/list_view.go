package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"superadmin/internal/admin"
)

// statusCycle is the order the status filter steps through with "f".
var statusCycle = []string{admin.StatusAll, "active", "inactive", "pending"}

// sortCycle is the order the sort column steps through with "s".
var sortCycle = []admin.SortKey{
	admin.SortByName,
	admin.SortByLastActivity,
	admin.SortBySocieties,
	admin.SortByPerformance,
}

var sortLabels = map[admin.SortKey]string{
	admin.SortByName:         "Name",
	admin.SortByLastActivity: "Last Activity",
	admin.SortBySocieties:    "Societies",
	admin.SortByPerformance:  "Performance",
}

// listView is the admin table screen: search box, filter and sort state
// readout, the paginated table, and the pagination footer. All list state
// lives in the store; this view only holds the row cursor and the search
// input widget.
type listView struct {
	app    *App
	search textinput.Model
	cursor int // row index within the displayed page
}

func newListView(app *App) *listView {
	search := textinput.New()
	search.Placeholder = "Search by name or email..."
	search.Prompt = "⌕ "
	search.CharLimit = 80
	search.SetValue(app.store.Query().Search)
	return &listView{app: app, search: search}
}

// page recomputes the projection for the current store state.
func (v *listView) page() admin.Page {
	return v.app.store.Project()
}

// clampCursor keeps the row cursor inside the displayed page.
func (v *listView) clampCursor(p admin.Page) {
	if v.cursor >= len(p.Items) {
		v.cursor = len(p.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// selectedRow returns the admin under the row cursor, if the page has one.
func (v *listView) selectedRow() (admin.Admin, bool) {
	p := v.page()
	if len(p.Items) == 0 {
		return admin.Admin{}, false
	}
	v.clampCursor(p)
	return p.Items[v.cursor], true
}

func (v *listView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := v.app

	// While the search box has focus every key edits the term except the
	// ones that give focus back to the table.
	if v.search.Focused() {
		switch msg.String() {
		case "esc", "enter", "tab", "down":
			v.search.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		a.store.SetSearchTerm(v.search.Value())
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "tab":
		a.focus = focusMenu
	case "/":
		v.search.Focus()
		return a, textinput.Blink
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if p := v.page(); v.cursor < len(p.Items)-1 {
			v.cursor++
		}
	case "left", "h":
		q := a.store.Query()
		if q.Page > 1 {
			a.store.SetCurrentPage(q.Page - 1)
			v.cursor = 0
		}
	case "right", "l":
		q := a.store.Query()
		if q.Page < v.page().TotalPages {
			a.store.SetCurrentPage(q.Page + 1)
			v.cursor = 0
		}
	case "f":
		v.cycleStatusFilter()
	case "s":
		v.cycleSortColumn()
	case "o":
		v.toggleSortOrder()
	case " ":
		if row, ok := v.selectedRow(); ok {
			a.store.ToggleSelected(row.ID)
		}
	case "a":
		a.store.ToggleSelectAll(v.page().IDs())
	case "enter":
		if row, ok := v.selectedRow(); ok {
			a.openDetail(row)
		}
	case "n":
		a.openForm(nil)
	case "e":
		if row, ok := v.selectedRow(); ok {
			a.openForm(&row)
		}
	case "t":
		if row, ok := v.selectedRow(); ok {
			a.store.ToggleStatus(row.ID)
			updated, _ := a.store.Get(row.ID)
			a.statusMsg = fmt.Sprintf("%s is now %s", updated.Name, updated.Status)
			a.logInfo("Toggled %s to %s", updated.Name, updated.Status)
		}
	case "d":
		if row, ok := v.selectedRow(); ok {
			a.store.Delete(row.ID)
			a.statusMsg = fmt.Sprintf("Deleted %s", row.Name)
			a.logInfo("Deleted admin %s (id %d)", row.Name, row.ID)
			v.clampCursor(v.page())
		}
	case "b":
		v.bulkStatus(admin.StatusActive)
	case "B":
		v.bulkStatus(admin.StatusInactive)
	case "x":
		a.exportList()
	}
	return a, nil
}

func (v *listView) cycleStatusFilter() {
	current := v.app.store.Query().Status
	for i, s := range statusCycle {
		if s == current {
			v.app.store.SetStatusFilter(statusCycle[(i+1)%len(statusCycle)])
			return
		}
	}
	v.app.store.SetStatusFilter(admin.StatusAll)
}

// cycleSortColumn advances to the next sort column and resets the direction
// to ascending, matching how picking a new column header behaves.
func (v *listView) cycleSortColumn() {
	current := v.app.store.Query().SortBy
	for i, key := range sortCycle {
		if key == current {
			v.app.store.SetSortBy(sortCycle[(i+1)%len(sortCycle)])
			v.app.store.SetSortOrder(admin.SortAsc)
			return
		}
	}
	v.app.store.SetSortBy(sortCycle[0])
	v.app.store.SetSortOrder(admin.SortAsc)
}

func (v *listView) toggleSortOrder() {
	if v.app.store.Query().SortOrder == admin.SortAsc {
		v.app.store.SetSortOrder(admin.SortDesc)
	} else {
		v.app.store.SetSortOrder(admin.SortAsc)
	}
}

func (v *listView) bulkStatus(status admin.Status) {
	ids := v.app.store.SelectedIDs()
	if len(ids) == 0 {
		v.app.statusMsg = "No admins selected"
		return
	}
	v.app.store.SetStatusMany(ids, status)
	v.app.statusMsg = fmt.Sprintf("Set %d admin(s) to %s", len(ids), status)
	v.app.logInfo("Bulk set %d admin(s) to %s", len(ids), status)
}

func (v *listView) render(width int) string {
	a := v.app
	p := v.page()
	v.clampCursor(p)
	q := a.store.Query()

	title := strongStyle.Render("Platform Administrators")
	subtitle := labelStyle.Render("Manage platform administrators and their society assignments")

	filterLine := fmt.Sprintf(
		"Filter: %s    Sort: %s %s",
		titleCase(q.Status),
		sortLabels[q.SortBy],
		sortArrow(q.SortOrder),
	)

	rows := []string{v.renderHeaderRow()}
	for i, ad := range p.Items {
		rows = append(rows, v.renderRow(ad, i == v.cursor, width))
	}
	if len(p.Items) == 0 {
		rows = append(rows, subtleStyle.Render("  No admins match the current search and filter."))
	}

	footer := fmt.Sprintf(
		"Showing %d to %d of %d admins · page %d/%d",
		p.RangeStart, p.RangeEnd, p.TotalCount, q.Page, p.TotalPages,
	)

	sections := []string{
		title,
		subtitle,
		"",
		v.search.View(),
		labelStyle.Render(filterLine),
		"",
		strings.Join(rows, "\n"),
		"",
		subtleStyle.Render(footer),
		subtleStyle.Render("/ search · f filter · s sort · o order · space select · a select page · enter view · n new · e edit · t toggle · d delete · b/B bulk · x export"),
	}
	return strings.Join(sections, "\n")
}

func (v *listView) renderHeaderRow() string {
	header := fmt.Sprintf("  %-3s %-24s %-10s %-9s %-13s %s",
		"", "Admin", "Status", "Societies", "Last Active", "Performance")
	return strongStyle.Render(header)
}

func (v *listView) renderRow(ad admin.Admin, selected bool, width int) string {
	check := "[ ]"
	if v.app.store.IsSelected(ad.ID) {
		check = "[x]"
	}
	name := ad.Name
	if len(name) > 22 {
		name = name[:21] + "…"
	}
	line := fmt.Sprintf("%s %-3s %-24s %-10s %-9d %-13s %d tickets",
		check,
		initials(ad.Name),
		name,
		titleCase(string(ad.Status)),
		len(ad.AssignedSocieties),
		humanizeDuration(v.app.now().Sub(ad.LastActivity))+" ago",
		ad.TicketsResolved,
	)
	style := lipgloss.NewStyle().Width(max(20, width-4))
	if selected {
		return style.Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Render("> " + line)
	}
	return style.Render("  " + line)
}

func sortArrow(order admin.SortOrder) string {
	if order == admin.SortDesc {
		return "↓"
	}
	return "↑"
}
