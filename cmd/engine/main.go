package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"leadboard-engine/internal/approval"
	"leadboard-engine/internal/config"
	"leadboard-engine/internal/domain"
	"leadboard-engine/internal/httpapi"
	"leadboard-engine/internal/loader"
	"leadboard-engine/internal/secrets"
	"leadboard-engine/internal/sheet"
	"leadboard-engine/internal/store"

	eventspkg "leadboard-engine/internal/events"
)

func main() {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	// Engine data dir: use env if provided (the desktop shell passes one),
	// else local folder.
	dataDir := os.Getenv("LEADBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir. A second instance would race the write path's
	// per-ordinal serialization.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running for %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		cfg, _ = config.NormalizeAndValidate(cfg)
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "leadboard.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := eventspkg.NewHub()

	var loadStatus atomic.Value
	loadStatus.Store(httpapi.LoadStatus{})

	// Seed /status with the previous run's summary so a restart doesn't look
	// like a blank history.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		rec, ok, err := store.LastLoad(ctx, db.Pool)
		cancel()
		if err == nil && ok {
			st := httpapi.LoadStatus{
				LastLoadAt: rec.At.Format(time.RFC3339),
				Posts:      rec.Posts,
				Scraped:    rec.Scraped,
				Leads:      rec.Leads,
				Unified:    rec.Unified,
				TabErrors:  rec.TabErrors,
			}
			if rec.TabErrors == 0 {
				st.LastOkAt = st.LastLoadAt
			}
			loadStatus.Store(st)
		}
	}

	newLoader := func() *loader.Loader {
		c := cfgVal.Load().(config.Config)
		client := sheet.NewClient(c.Sheet.DocumentID, c.Sheet.ReqPerSec, c.Sheet.Burst)
		if c.Sheet.BaseURL != "" {
			client.BaseURL = c.Sheet.BaseURL
		}
		return &loader.Loader{Client: client, Cfg: c}
	}
	runLoad := func(ctx context.Context) loader.Result {
		return newLoader().Load(ctx)
	}
	loadMessages := func(ctx context.Context) ([]domain.MessageEntry, sheet.MessageColumns, error) {
		return newLoader().LoadMessages(ctx)
	}

	updater := &approval.Updater{
		LoadMessages: loadMessages,
		SinkURL: func() string {
			u, err := secrets.GetSinkURL(cfgVal.Load().(config.Config))
			if err != nil {
				return ""
			}
			return u
		},
		DocumentID: cfg.Sheet.DocumentID,
		TabName:    cfg.Tabs.Messages,
		// Runs after the sink accepted the write; it alone knows the resolved
		// sheet row, so the audit record and the SSE event originate here.
		OnApplied: func(req approval.Request, value string, row int) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = store.RecordApproval(ctx, db.Pool, store.ApprovalRecord{
				At:           time.Now().UTC(),
				Ordinal:      req.Ordinal,
				Target:       string(req.Target),
				DisplayValue: value,
				SheetRow:     row,
				OK:           true,
			})
			hub.Publish(eventspkg.MakeEvent("", eventspkg.TypeApprovalUpdated, 1, map[string]any{
				"ordinal": req.Ordinal,
				"state":   req.Target,
			}))
		},
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:           db.Pool,
		Hub:          hub,
		CfgVal:       &cfgVal,
		LoadStatus:   &loadStatus,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
		RunLoad:      runLoad,
		LoadMessages: loadMessages,
		Updater:      updater,
	})

	addr := "127.0.0.1:38592"
	if cfg.App.Port > 0 {
		addr = net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.Cors, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)
	log.Printf("shutdown token: %s", token)

	log.Fatal(srv.Serve(ln))
}
