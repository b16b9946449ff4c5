package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"superadmin/internal/admin"
)

// Form row indices for the fixed fields. Assigned-society rows, the society
// picker, and the submit row follow and are computed per render because the
// assignment list grows and shrinks.
const (
	rowName = iota
	rowEmail
	rowPhone
	rowStatus
	rowFixedCount
)

// formView is the create/edit screen. It holds a draft of the editable
// fields; nothing touches the store until the submission validates.
type formView struct {
	app      *App
	editing  *admin.Admin // nil when creating
	returnTo appState

	inputs   []textinput.Model // name, email, phone
	status   admin.Status
	assigned []admin.Society
	picker   int // index into unassigned()
	row      int
	errors   admin.FieldErrors
}

func newFormView(app *App, editing *admin.Admin) *formView {
	labels := []string{"Full Name", "Email Address", "Phone Number"}
	inputs := make([]textinput.Model, 3)
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 80
		in.Prompt = ""
		inputs[i] = in
	}

	v := &formView{
		app:      app,
		editing:  editing,
		returnTo: app.state,
		inputs:   inputs,
		status:   admin.StatusPending,
	}
	if editing != nil {
		v.inputs[rowName].SetValue(editing.Name)
		v.inputs[rowEmail].SetValue(editing.Email)
		v.inputs[rowPhone].SetValue(editing.Phone)
		v.status = editing.Status
		v.assigned = append([]admin.Society(nil), editing.AssignedSocieties...)
	}
	v.inputs[rowName].Focus()
	return v
}

// unassigned returns the catalog societies not yet in the draft assignment.
func (v *formView) unassigned() []admin.Society {
	out := make([]admin.Society, 0, len(v.app.societies))
	for _, s := range v.app.societies {
		found := false
		for _, assigned := range v.assigned {
			if assigned.ID == s.ID {
				found = true
				break
			}
		}
		if !found {
			out = append(out, s)
		}
	}
	return out
}

// rowCount is the total number of navigable rows in the current draft.
func (v *formView) rowCount() int {
	count := rowFixedCount + len(v.assigned) + 1 // +1 for submit
	if len(v.unassigned()) > 0 {
		count++ // picker row
	}
	return count
}

// pickerRow returns the index of the society picker row, or -1 when every
// society is already assigned.
func (v *formView) pickerRow() int {
	if len(v.unassigned()) == 0 {
		return -1
	}
	return rowFixedCount + len(v.assigned)
}

func (v *formView) submitRow() int {
	return v.rowCount() - 1
}

func (v *formView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := v.app
	key := msg.String()

	switch key {
	case "esc":
		v.close()
		return a, nil
	case "tab", "down":
		v.moveRow(1)
		return a, nil
	case "shift+tab", "up":
		v.moveRow(-1)
		return a, nil
	}

	switch {
	case v.row < rowStatus:
		if key == "enter" {
			v.moveRow(1)
			return a, nil
		}
		var cmd tea.Cmd
		v.inputs[v.row], cmd = v.inputs[v.row].Update(msg)
		return a, cmd

	case v.row == rowStatus:
		if key == "left" || key == "right" {
			v.cycleStatus(key == "right")
		}

	case v.row >= rowFixedCount && v.row < rowFixedCount+len(v.assigned):
		// Assigned-society row: enter or space removes the assignment.
		if key == "enter" || key == " " {
			removed := v.assigned[v.row-rowFixedCount]
			v.assigned = admin.RemoveSociety(v.assigned, removed.ID)
			if v.row >= v.rowCount() {
				v.row = v.rowCount() - 1
			}
		}

	case v.row == v.pickerRow():
		choices := v.unassigned()
		switch key {
		case "left":
			v.picker = (v.picker + len(choices) - 1) % len(choices)
		case "right":
			v.picker = (v.picker + 1) % len(choices)
		case "enter", " ":
			v.assigned = admin.AssignSociety(v.assigned, choices[v.picker])
			v.picker = 0
		}

	case v.row == v.submitRow():
		if key == "enter" {
			v.submit()
		}
	}
	return a, nil
}

func (v *formView) moveRow(delta int) {
	if v.row < len(v.inputs) {
		v.inputs[v.row].Blur()
	}
	count := v.rowCount()
	v.row = (v.row + delta + count) % count
	if v.row < len(v.inputs) {
		v.inputs[v.row].Focus()
	}
	if pr := v.pickerRow(); pr >= 0 && v.row == pr {
		v.picker = 0
	}
}

func (v *formView) cycleStatus(forward bool) {
	for i, s := range admin.Statuses {
		if s != v.status {
			continue
		}
		if forward {
			v.status = admin.Statuses[(i+1)%len(admin.Statuses)]
		} else {
			v.status = admin.Statuses[(i+len(admin.Statuses)-1)%len(admin.Statuses)]
		}
		return
	}
	v.status = admin.StatusPending
}

// submit validates the draft and applies it to the store. A failed validation
// leaves the store untouched and surfaces field-level messages.
func (v *formView) submit() {
	a := v.app
	name := strings.TrimSpace(v.inputs[rowName].Value())
	email := strings.TrimSpace(v.inputs[rowEmail].Value())
	phone := strings.TrimSpace(v.inputs[rowPhone].Value())

	if errs := admin.ValidateProfile(name, email, phone); errs != nil {
		v.errors = errs
		return
	}
	v.errors = nil

	if v.editing != nil {
		updated := *v.editing
		updated.Name = name
		updated.Email = email
		updated.Phone = phone
		updated.Status = v.status
		updated.AssignedSocieties = v.assigned
		a.store.Update(updated)
		a.statusMsg = fmt.Sprintf("Updated %s", name)
		a.logInfo("Updated admin %s (id %d)", name, updated.ID)
	} else {
		created := a.store.Create(admin.Admin{
			Name:              name,
			Email:             email,
			Phone:             phone,
			Status:            v.status,
			AssignedSocieties: v.assigned,
		})
		a.statusMsg = fmt.Sprintf("Created %s (id %d)", name, created.ID)
		a.logInfo("Created admin %s (id %d)", name, created.ID)
	}
	v.close()
}

// close leaves the form, returning to the screen it was opened from. The
// detail screen is only resumed while its admin still exists.
func (v *formView) close() {
	a := v.app
	a.formView = nil
	if v.returnTo == stateAdminDetail {
		if _, ok := a.store.FocusedAdmin(); ok {
			a.state = stateAdminDetail
			return
		}
	}
	a.state = stateAdminList
}

func (v *formView) render(width int) string {
	title := "Create New Admin"
	if v.editing != nil {
		title = fmt.Sprintf("Edit Admin · %s", v.editing.Name)
	}

	lines := []string{strongStyle.Render(title), ""}

	fieldLabels := []string{"Full Name", "Email Address", "Phone Number"}
	fieldKeys := []string{"name", "email", "phone"}
	for i, label := range fieldLabels {
		lines = append(lines, v.renderRowMarker(i)+labelStyle.Render(fmt.Sprintf("%-14s", label))+v.inputs[i].View())
		if msg, ok := v.errors[fieldKeys[i]]; ok {
			lines = append(lines, errorStyle.Render("                "+msg))
		}
	}

	lines = append(lines, v.renderRowMarker(rowStatus)+labelStyle.Render(fmt.Sprintf("%-14s", "Status"))+"◂ "+titleCase(string(v.status))+" ▸")
	lines = append(lines, "", strongStyle.Render("Society Assignments"))

	if len(v.assigned) == 0 {
		lines = append(lines, subtleStyle.Render("  none assigned"))
	}
	for i, s := range v.assigned {
		row := rowFixedCount + i
		lines = append(lines, fmt.Sprintf("%s%s — %s · %d units  %s",
			v.renderRowMarker(row), s.Name, s.Location, s.UnitCount,
			subtleStyle.Render("(enter removes)")))
	}

	if pr := v.pickerRow(); pr >= 0 {
		choices := v.unassigned()
		choice := choices[v.picker%len(choices)]
		lines = append(lines, fmt.Sprintf("%s%s ◂ %s · %s ▸ %s",
			v.renderRowMarker(pr),
			labelStyle.Render("Add society "),
			choice.Name, choice.Location,
			subtleStyle.Render("(enter assigns)")))
	}

	submitLabel := "Create Admin"
	if v.editing != nil {
		submitLabel = "Update Admin"
	}
	lines = append(lines, "", v.renderRowMarker(v.submitRow())+strongStyle.Render("[ "+submitLabel+" ]"))
	lines = append(lines, "", subtleStyle.Render("tab/↑↓ move · ◂▸ change · enter confirm · esc cancel"))

	return strings.Join(lines, "\n")
}

func (v *formView) renderRowMarker(row int) string {
	if v.row == row {
		return "> "
	}
	return "  "
}
