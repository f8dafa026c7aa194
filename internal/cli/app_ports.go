package cli

import (
	"time"

	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/form"
)

func (a *App) listEntriesUseCase() app.ListEntriesUseCase {
	if a.ListEntries != nil {
		return a.ListEntries
	}
	return a.Entries
}

func (a *App) createEntryUseCase() app.CreateEntryUseCase {
	if a.CreateEntry != nil {
		return a.CreateEntry
	}
	return a.Entries
}

func (a *App) deleteEntryUseCase() app.DeleteEntryUseCase {
	if a.DeleteEntry != nil {
		return a.DeleteEntry
	}
	return a.Entries
}

func (a *App) importEntriesUseCase() app.ImportEntriesUseCase {
	if a.ImportEntries != nil {
		return a.ImportEntries
	}
	return a.Entries
}

func (a *App) catalog() *domain.Catalog {
	if a.Catalog != nil {
		return a.Catalog
	}
	return domain.DefaultCatalog()
}

func (a *App) maxDailyHours() float64 {
	if a.MaxDailyHours > 0 {
		return a.MaxDailyHours
	}
	return domain.DefaultMaxDailyHours
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) formRules() form.Rules {
	return form.Rules{MaxHours: a.maxDailyHours(), Projects: a.catalog()}
}
