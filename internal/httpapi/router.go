package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs
// srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Dashboard reads
	dh := DashboardHandler{DB: d.DB, Hub: d.Hub, LoadStatus: d.LoadStatus, RunLoad: d.RunLoad}
	mux.HandleFunc("/dashboard", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Get,
	}))
	mux.HandleFunc("/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Export,
	}))
	mux.HandleFunc("/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Status,
	}))

	// Message queue + the one write path
	ah := ApprovalHandler{DB: d.DB, Updater: d.Updater, LoadMessages: d.LoadMessages}
	mux.HandleFunc("/messages", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.List,
	}))
	mux.HandleFunc("/approval", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Update,
	}))
	mux.HandleFunc("/approval/audit", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Audit,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/sink", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   sh.SetSinkURL,
		http.MethodGet:    sh.SinkStatus,
		http.MethodDelete: sh.DeleteSinkURL,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
