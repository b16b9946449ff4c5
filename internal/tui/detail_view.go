package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"superadmin/internal/admin"
)

// activityIcons maps feed entry types to their display glyphs.
var activityIcons = map[admin.ActivityType]string{
	admin.ActivityApproval: "✔",
	admin.ActivityCreation: "+",
	admin.ActivityUpdate:   "✎",
	admin.ActivityDeletion: "✕",
	admin.ActivityLogin:    "⚷",
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused, ok := a.store.FocusedAdmin()
	if !ok {
		a.returnToList()
		return a, nil
	}

	switch msg.String() {
	case "esc", "backspace":
		a.returnToList()
	case "q":
		return a, tea.Quit
	case "e":
		a.openForm(&focused)
	case "t":
		a.store.ToggleStatus(focused.ID)
		if updated, ok := a.store.FocusedAdmin(); ok {
			a.statusMsg = fmt.Sprintf("%s is now %s", updated.Name, updated.Status)
			a.logInfo("Toggled %s to %s", updated.Name, updated.Status)
		}
	case "d":
		a.store.Delete(focused.ID)
		a.statusMsg = fmt.Sprintf("Deleted %s", focused.Name)
		a.logInfo("Deleted admin %s (id %d)", focused.Name, focused.ID)
		a.returnToList()
	}
	return a, nil
}

// renderDetail draws the read-only profile: identity card, performance
// metrics, assigned societies, and the recent-activity feed.
func (a *App) renderDetail(width int) string {
	focused, ok := a.store.FocusedAdmin()
	if !ok {
		return subtleStyle.Render("No admin selected.")
	}

	header := fmt.Sprintf("%s  %s  %s",
		strongStyle.Render("["+initials(focused.Name)+"]"),
		strongStyle.Render(focused.Name),
		statusBadge(focused.Status),
	)

	profile := []string{
		header,
		"",
		labelStyle.Render("Email   ") + focused.Email,
		labelStyle.Render("Phone   ") + focused.Phone,
		labelStyle.Render("Joined  ") + focused.CreatedAt.Format("Jan 02, 2006"),
		labelStyle.Render("Active  ") + humanizeDuration(a.now().Sub(focused.LastActivity)) + " ago",
	}

	metrics := fmt.Sprintf("%s   %d logins · %d tickets resolved · %d societies managed",
		strongStyle.Render("Performance"),
		focused.LoginCount,
		focused.TicketsResolved,
		len(focused.AssignedSocieties),
	)

	societies := []string{strongStyle.Render(fmt.Sprintf("Assigned Societies (%d)", len(focused.AssignedSocieties)))}
	if len(focused.AssignedSocieties) == 0 {
		societies = append(societies, subtleStyle.Render("  No societies assigned yet"))
	}
	for _, s := range focused.AssignedSocieties {
		societies = append(societies, fmt.Sprintf("  %s — %s · %d units",
			strongStyle.Render(s.Name), s.Location, s.UnitCount))
	}

	feed := []string{strongStyle.Render("Recent Activities")}
	if len(focused.RecentActivities) == 0 {
		feed = append(feed, subtleStyle.Render("  No recent activity"))
	}
	for _, act := range focused.RecentActivities {
		icon := activityIcons[act.Type]
		if icon == "" {
			icon = "·"
		}
		line := fmt.Sprintf("  %s %s — %s (%s ago)",
			icon, act.Action, act.Society, humanizeDuration(a.now().Sub(act.Timestamp)))
		feed = append(feed, line)
		if act.Details != "" {
			feed = append(feed, subtleStyle.Render("     "+act.Details))
		}
	}

	sections := []string{
		strings.Join(profile, "\n"),
		"",
		metrics,
		"",
		strings.Join(societies, "\n"),
		"",
		strings.Join(feed, "\n"),
		"",
		subtleStyle.Render("esc back · e edit · t enable/disable · d delete"),
	}
	return lipgloss.NewStyle().Width(max(40, width-4)).Render(strings.Join(sections, "\n"))
}
