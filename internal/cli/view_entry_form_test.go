package cli

import (
	"testing"

	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEntryForm_ValidInputBecomesCandidate(t *testing.T) {
	state := &SharedState{App: testApp(t)}
	in := form.Entry{Date: "2024-01-15", ProjectID: domain.ProjectClientA, Hours: "1.5", Description: "  Review  "}

	msg := submitEntryForm(state, in)()

	submit, ok := msg.(entrySubmitMsg)
	require.True(t, ok, "expected entrySubmitMsg, got %T", msg)
	assert.Equal(t, domain.NewTimeEntry{
		Date: "2024-01-15", ProjectID: domain.ProjectClientA, Hours: 1.5, Description: "Review",
	}, submit.candidate)
	assert.Equal(t, in, state.Draft)
}

func TestSubmitEntryForm_InvalidInputReopensForm(t *testing.T) {
	state := &SharedState{App: testApp(t)}
	in := form.Entry{Date: "2024-01-15", ProjectID: "UNKNOWN", Hours: "0", Description: "x"}

	msg := submitEntryForm(state, in)()

	push, ok := msg.(pushViewMsg)
	require.True(t, ok, "expected pushViewMsg, got %T", msg)
	assert.Equal(t, ViewForm, push.view.ID())
	assert.Equal(t, in, state.Draft, "draft keeps what the user typed")
}

func TestSubmitEntryForm_DailyCapIsLeftToTheService(t *testing.T) {
	a := testApp(t)
	seedEntry(t, a, "2024-01-15", domain.ProjectClientA, 23, "nearly full")
	state := &SharedState{App: a}

	msg := submitEntryForm(state, form.Entry{
		Date: "2024-01-15", ProjectID: domain.ProjectClientA, Hours: "5", Description: "over",
	})()

	assert.IsType(t, entrySubmitMsg{}, msg)
}

func TestEntryForm_DefaultsDateToToday(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('a')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.View(), "2024-01-15")
}
