package service

import "github.com/alexanderramin/visotime/internal/app"

// EntryService owns the business rules for time entries: required fields,
// positive hours and the per-date hours cap.
type EntryService interface {
	app.ListEntriesUseCase
	app.CreateEntryUseCase
	app.DeleteEntryUseCase
	app.ImportEntriesUseCase
}
