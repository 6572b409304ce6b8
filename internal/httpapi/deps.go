package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"leadboard-engine/internal/approval"
	"leadboard-engine/internal/config"
	"leadboard-engine/internal/domain"
	"leadboard-engine/internal/events"
	"leadboard-engine/internal/loader"
	"leadboard-engine/internal/sheet"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic stores
	CfgVal     *atomic.Value // stores config.Config
	LoadStatus *atomic.Value // stores httpapi.LoadStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Load entrypoints (injected for testability)
	RunLoad      func(ctx context.Context) loader.Result
	LoadMessages func(ctx context.Context) ([]domain.MessageEntry, sheet.MessageColumns, error)

	Updater *approval.Updater
}
