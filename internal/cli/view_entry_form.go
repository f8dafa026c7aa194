package cli

import (
	"github.com/alexanderramin/visotime/internal/cli/formatter"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/form"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// entryFormFields holds form-bound values for the entry wizard.
type entryFormFields struct {
	date        string
	projectID   string
	hours       string
	description string
}

func (f *entryFormFields) entry() form.Entry {
	return form.Entry{
		Date:        f.date,
		ProjectID:   f.projectID,
		Hours:       f.hours,
		Description: f.description,
	}
}

// newEntryFormView creates the wizard for a new time entry, prefilled from
// the shared draft. errs, when non-empty, are shown under their fields.
func newEntryFormView(state *SharedState, errs form.Errors) *wizardView {
	draft := state.Draft
	f := &entryFormFields{
		date:        draft.Date,
		projectID:   draft.ProjectID,
		hours:       draft.Hours,
		description: draft.Description,
	}
	if f.date == "" {
		f.date = state.App.now().Format(domain.DateLayout)
	}

	projects := state.App.catalog().Projects()
	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}
	if f.projectID == "" && len(projects) > 0 {
		f.projectID = projects[0].ID
	}

	hf := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description(fieldHint(errs, form.FieldDate, "YYYY-MM-DD")).
				Value(&f.date),
			huh.NewSelect[string]().
				Title("Project").
				Description(fieldHint(errs, form.FieldProject, "")).
				Options(options...).
				Value(&f.projectID),
			huh.NewInput().
				Title("Hours").
				Placeholder("2.5").
				Description(fieldHint(errs, form.FieldHours, "")).
				Value(&f.hours),
			huh.NewInput().
				Title("Description").
				Placeholder("What did you work on?").
				Description(fieldHint(errs, form.FieldDescription, "")).
				Value(&f.description),
		),
	).WithTheme(visotimeHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return submitEntryForm(state, f.entry())
	}

	return newWizardView(state, "New Entry", hf, done)
}

// submitEntryForm gates submission on form validation. Invalid input
// reopens the form with its errors; valid input is handed to the history
// view as an entrySubmitMsg.
func submitEntryForm(state *SharedState, in form.Entry) tea.Cmd {
	state.Draft = in

	errs := form.Validate(in, state.App.formRules())
	if !errs.Empty() {
		return pushView(newEntryFormView(state, errs))
	}

	candidate := in.Candidate()
	return func() tea.Msg { return entrySubmitMsg{candidate: candidate} }
}

func fieldHint(errs form.Errors, field, hint string) string {
	if msg, ok := errs[field]; ok {
		return formatter.StyleRed.Render("✘ " + msg)
	}
	return hint
}
