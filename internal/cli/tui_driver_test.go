package cli

import (
	"testing"

	"github.com/alexanderramin/visotime/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sizes the terminal and
// drains Init(), which loads the history synchronously.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// History returns the history view at the bottom of the stack.
func (d *TestDriver) History() *historyView {
	d.T.Helper()
	h, ok := d.appModel().viewStack[0].(*historyView)
	if !ok {
		d.T.Fatalf("bottom view is %T, not *historyView", d.appModel().viewStack[0])
	}
	return h
}

// State returns the shared state.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}
