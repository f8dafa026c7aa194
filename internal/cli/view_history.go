package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/visotime/internal/aggregate"
	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/cli/formatter"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// entriesLoadedMsg carries the outcome of a ListAll call.
type entriesLoadedMsg struct {
	result app.Result[[]domain.TimeEntry]
	err    error
}

// entrySubmitMsg is sent by the entry form once its input validates.
type entrySubmitMsg struct {
	candidate domain.NewTimeEntry
}

// entryCreatedMsg carries the outcome of a Create call.
type entryCreatedMsg struct {
	result app.Result[domain.TimeEntry]
	err    error
}

// entryDeletedMsg carries the outcome of a Delete call together with the
// list as it was before the optimistic removal.
type entryDeletedMsg struct {
	id       string
	snapshot []domain.TimeEntry
	result   app.Result[struct{}]
	err      error
}

// historyTickMsg carries the history spinner's ticks so they keep reaching
// it while the entry form is on top.
type historyTickMsg struct {
	spinner.TickMsg
}

func (entriesLoadedMsg) targetView() ViewID { return ViewHistory }
func (historyTickMsg) targetView() ViewID   { return ViewHistory }
func (entrySubmitMsg) targetView() ViewID   { return ViewHistory }
func (entryCreatedMsg) targetView() ViewID  { return ViewHistory }
func (entryDeletedMsg) targetView() ViewID  { return ViewHistory }

// ── view ─────────────────────────────────────────────────────────────────────

// historyView is the home screen: every entry grouped by day, newest first,
// with per-day totals against the daily cap.
type historyView struct {
	state   *SharedState
	entries entriesState

	// cursor indexes the flattened, displayed entry order.
	cursor int

	spinner spinner.Model
	vp      viewport.Model
}

func newHistoryView(state *SharedState) *historyView {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StylePurple))
	return &historyView{
		state:   state,
		spinner: sp,
		vp:      viewport.New(0, 0),
	}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
	if v.entries.errMsg != "" {
		bindings = append(bindings, key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")))
	}
	return append(bindings, key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")))
}

func (v *historyView) Init() tea.Cmd {
	return v.reload()
}

// ── service calls ────────────────────────────────────────────────────────────

func (v *historyView) reload() tea.Cmd {
	v.entries.beginLoad()
	list := v.state.App.listEntriesUseCase()
	return tea.Batch(func() tea.Msg {
		res, err := list.ListAll(context.Background())
		return entriesLoadedMsg{result: res, err: err}
	}, v.tick())
}

func (v *historyView) create(candidate domain.NewTimeEntry) tea.Cmd {
	v.entries.beginCreate()
	create := v.state.App.createEntryUseCase()
	return tea.Batch(func() tea.Msg {
		res, err := create.Create(context.Background(), candidate)
		return entryCreatedMsg{result: res, err: err}
	}, v.tick())
}

func (v *historyView) tick() tea.Cmd {
	return routeTick(v.spinner.Tick)
}

// routeTick wraps the spinner.TickMsg produced by cmd in a historyTickMsg.
func routeTick(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if t, ok := msg.(spinner.TickMsg); ok {
			return historyTickMsg{TickMsg: t}
		}
		return msg
	}
}

// deleteSelected removes the selected entry from the screen before the
// service confirms it.
func (v *historyView) deleteSelected() tea.Cmd {
	visible := v.visibleEntries()
	if v.cursor >= len(visible) {
		return nil
	}
	id := visible[v.cursor].ID
	snapshot := v.entries.removeOptimistic(id)
	v.clampCursor()

	del := v.state.App.deleteEntryUseCase()
	return func() tea.Msg {
		res, err := del.Delete(context.Background(), id)
		return entryDeletedMsg{id: id, snapshot: snapshot, result: res, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Sizing happens in syncViewport.

	case entriesLoadedMsg:
		v.entries.finishLoad(msg.result, msg.err)
		v.clampCursor()

	case entrySubmitMsg:
		cmd = v.create(msg.candidate)

	case entryCreatedMsg:
		if v.entries.finishCreate(msg.result, msg.err) {
			v.state.Draft = v.state.Draft.Reset()
			cmd = v.reload()
		}

	case entryDeletedMsg:
		v.entries.finishDelete(msg.snapshot, msg.result, msg.err)
		v.clampCursor()

	case historyTickMsg:
		if !v.busy() {
			return v, nil
		}
		v.spinner, cmd = v.spinner.Update(msg.TickMsg)
		return v, routeTick(cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.visibleEntries())-1 {
				v.cursor++
			}
		case "a":
			if v.entries.formSubmitting {
				break
			}
			cmd = pushView(newEntryFormView(v.state, nil))
		case "d", "delete":
			cmd = v.deleteSelected()
		case "r":
			cmd = v.reload()
		case "x":
			v.entries.dismissError()
		}
	}

	v.syncViewport()
	return v, cmd
}

func (v *historyView) busy() bool {
	return v.entries.listLoading || v.entries.formSubmitting
}

// visibleEntries returns the entries in the order they are drawn.
func (v *historyView) visibleEntries() []domain.TimeEntry {
	var out []domain.TimeEntry
	for _, g := range v.entries.groups() {
		out = append(out, g.Entries...)
	}
	return out
}

func (v *historyView) clampCursor() {
	n := len(v.visibleEntries())
	if v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

// ── view rendering ───────────────────────────────────────────────────────────

// historyTopLines is the number of lines drawn above the scrolling body.
const historyTopLines = 3

func (v *historyView) View() string {
	var b strings.Builder
	b.WriteString(v.renderSummary() + "\n")
	b.WriteString(v.renderStatus() + "\n\n")

	if v.state.Height > 0 {
		b.WriteString(v.vp.View())
	} else {
		body, _ := v.renderBody()
		b.WriteString(body)
	}
	return b.String()
}

func (v *historyView) renderSummary() string {
	if !v.entries.loaded {
		return "  " + formatter.Dim("Grand Total: –")
	}
	groups := v.entries.groups()
	limit := v.state.App.maxDailyHours()
	today := v.state.App.now().Format(domain.DateLayout)

	var todayTotal float64
	for _, g := range groups {
		if g.Date == today {
			todayTotal = g.TotalHours
			break
		}
	}
	return "  " + formatter.GrandTotal(aggregate.GrandTotal(groups)) +
		formatter.Dim("   Today ") + formatter.RenderCapGauge(todayTotal, limit, 16)
}

func (v *historyView) renderStatus() string {
	switch {
	case v.entries.errMsg != "":
		return "  " + formatter.Failure(formatter.StyleRed.Render(v.entries.errMsg)) + "  " + formatter.Dim("(x to dismiss)")
	case v.entries.formSubmitting:
		return "  " + v.spinner.View() + " " + formatter.Dim("Saving entry...")
	case v.entries.listLoading:
		return "  " + v.spinner.View() + " " + formatter.Dim("Loading entries...")
	}
	return ""
}

// renderBody draws the grouped entries and reports the line the cursor
// is on, or -1 when there is nothing to select.
func (v *historyView) renderBody() (string, int) {
	if !v.entries.loaded {
		return "", -1
	}
	groups := v.entries.groups()
	if len(groups) == 0 {
		return formatter.RenderBox("", formatter.EmptyHistory()+"\n"+formatter.Dim("Press a to add your first entry.")), -1
	}

	a := v.state.App
	catalog := a.catalog()
	limit := a.maxDailyHours()
	now := a.now()

	var lines []string
	cursorLine := -1
	idx := 0
	for i, g := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		remaining := aggregate.RemainingHours(g.TotalHours, limit)
		lines = append(lines, "  "+formatter.DayHeader(g, limit, now)+"  "+
			formatter.Dim(strconv.FormatFloat(remaining, 'f', -1, 64)+"h left"))

		for _, e := range g.Entries {
			marker := "    "
			desc := formatter.Truncate(e.Description, 48)
			if idx == v.cursor {
				marker = "  " + formatter.StyleGreen.Render("▸ ")
				cursorLine = len(lines)
				desc = formatter.Bold(desc)
			}
			lines = append(lines, fmt.Sprintf("%s%s %7s  %s",
				marker,
				formatter.StyleBlue.Render(fmt.Sprintf("%-16s", formatter.Truncate(catalog.Name(e.ProjectID), 16))),
				formatter.EntryHours(e.Hours),
				desc,
			))
			idx++
		}
	}
	return strings.Join(lines, "\n"), cursorLine
}

// syncViewport refreshes the scrolling body and keeps the cursor in view.
func (v *historyView) syncViewport() {
	if v.state.Height <= 0 {
		return
	}
	v.vp.Width = v.state.Width
	v.vp.Height = max(1, v.state.ContentHeight()-historyTopLines)

	body, cursorLine := v.renderBody()
	v.vp.SetContent(body)

	if cursorLine < 0 {
		v.vp.GotoTop()
		return
	}
	switch {
	case cursorLine < v.vp.YOffset:
		v.vp.SetYOffset(cursorLine)
	case cursorLine >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(cursorLine - v.vp.Height + 1)
	}
}
