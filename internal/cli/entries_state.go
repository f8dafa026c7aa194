package cli

import (
	"slices"

	"github.com/alexanderramin/visotime/internal/aggregate"
	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
)

// Messages shown when a call fails without a usable service message.
const (
	msgFetchFailed   = "Failed to fetch entries"
	msgUnexpected    = "An unexpected error occurred"
	msgCreateFailed  = "Failed to create entry"
	msgConnectFailed = "Failed to connect to the server"
	msgDeleteFailed  = "Failed to delete entry"
)

// entriesState is the displayed entry list and the flags around it. It
// has no I/O: historyView starts the calls and feeds the results back in.
// Only one error is held; each new failure replaces the previous one.
type entriesState struct {
	entries        []domain.TimeEntry
	loaded         bool
	listLoading    bool
	formSubmitting bool
	errMsg         string
}

func (s *entriesState) beginLoad() {
	s.listLoading = true
}

// finishLoad applies a list result. On failure the last-known entries stay.
func (s *entriesState) finishLoad(res app.Result[[]domain.TimeEntry], err error) {
	s.listLoading = false
	switch {
	case err != nil:
		s.errMsg = msgUnexpected
	case !res.Success():
		s.errMsg = orDefault(res.Message(), msgFetchFailed)
	default:
		entries, _ := res.Data()
		s.entries = entries
		s.loaded = true
	}
}

func (s *entriesState) beginCreate() {
	s.formSubmitting = true
	s.errMsg = ""
}

// finishCreate applies a create result and reports whether the list must
// be reloaded. The new entry is never appended locally.
func (s *entriesState) finishCreate(res app.Result[domain.TimeEntry], err error) bool {
	s.formSubmitting = false
	switch {
	case err != nil:
		s.errMsg = msgConnectFailed
		return false
	case !res.Success():
		s.errMsg = orDefault(res.Message(), msgCreateFailed)
		return false
	}
	return true
}

// removeOptimistic drops id from the displayed list right away and returns
// a copy of the list as it was, for rollback.
func (s *entriesState) removeOptimistic(id string) []domain.TimeEntry {
	snapshot := slices.Clone(s.entries)
	s.entries = slices.DeleteFunc(slices.Clone(s.entries), func(e domain.TimeEntry) bool {
		return e.ID == id
	})
	return snapshot
}

// finishDelete restores snapshot when the delete failed in any way.
func (s *entriesState) finishDelete(snapshot []domain.TimeEntry, res app.Result[struct{}], err error) {
	if err == nil && res.Success() {
		return
	}
	s.entries = snapshot
	s.errMsg = msgDeleteFailed
}

func (s *entriesState) dismissError() {
	s.errMsg = ""
}

func (s *entriesState) groups() []domain.DailyGroup {
	return aggregate.GroupByDate(s.entries)
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
