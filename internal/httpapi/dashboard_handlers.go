package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"leadboard-engine/internal/aggregate"
	"leadboard-engine/internal/events"
	"leadboard-engine/internal/loader"
	"leadboard-engine/internal/store"
)

type DashboardHandler struct {
	DB         *sql.DB
	Hub        *events.Hub
	LoadStatus *atomic.Value // httpapi.LoadStatus
	RunLoad    func(ctx context.Context) loader.Result
}

// Get runs a full fresh load and returns it. No snapshot is served: the view
// is rebuilt from the live sheet on every request, so a reload after an
// approval shows the sheet as it is now.
func (h DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	res := h.runAndRecord(r.Context())
	writeJSON(w, map[string]any{
		"posts":     res.Posts,
		"leads":     res.Unified,
		"stats":     res.Stats,
		"tabErrors": res.TabErrors,
		"loadedAt":  res.LoadedAt,
	})
}

// Export streams the downloadable lead report, optionally filtered the same
// way the UI filters its table.
func (h DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	res := h.runAndRecord(r.Context())

	q := r.URL.Query()
	leads := aggregate.FilterLeads(res.Unified, aggregate.Filter{
		SelectedPost: q.Get("post"),
		Search:       q.Get("q"),
	})

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)
	_, _ = w.Write([]byte(aggregate.ReportCSV(leads)))
}

func (h DashboardHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.LoadStatus.Load().(LoadStatus)
	st.Subscribers = h.Hub.Subscribers()
	writeJSON(w, st)
}

func (h DashboardHandler) runAndRecord(ctx context.Context) loader.Result {
	start := time.Now()
	res := h.RunLoad(ctx)

	st := LoadStatus{
		LastLoadAt: time.Now().UTC().Format(time.RFC3339),
		Posts:      res.Stats.TotalPosts,
		Scraped:    res.Stats.TotalScraped,
		Leads:      res.Stats.TotalLeads,
		Unified:    res.Stats.TotalUnified,
		TabErrors:  len(res.TabErrors),
	}
	if len(res.TabErrors) == 0 {
		st.LastOkAt = st.LastLoadAt
	} else {
		st.LastError = res.TabErrors[0].Err
	}
	if prev, ok := h.LoadStatus.Load().(LoadStatus); ok && st.LastOkAt == "" {
		st.LastOkAt = prev.LastOkAt
	}
	h.LoadStatus.Store(st)

	if h.DB != nil {
		_ = store.RecordLoad(ctx, h.DB, store.LoadRecord{
			At:         res.LoadedAt,
			Posts:      res.Stats.TotalPosts,
			Scraped:    res.Stats.TotalScraped,
			Leads:      res.Stats.TotalLeads,
			Unified:    res.Stats.TotalUnified,
			TabErrors:  len(res.TabErrors),
			DurationMS: time.Since(start).Milliseconds(),
		})
	}

	reqID := RequestIDFrom(ctx)
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeLoadComplete, 1, map[string]any{
		"unified": res.Stats.TotalUnified,
	}))
	return res
}
