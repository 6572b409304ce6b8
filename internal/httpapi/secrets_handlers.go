package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"leadboard-engine/internal/config"
	"leadboard-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setSinkURLReq struct {
	URL string `json:"url"`
}

func (h SecretsHandler) SetSinkURL(w http.ResponseWriter, r *http.Request) {
	var req setSinkURLReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.SetSinkURL(cfg, req.URL); err != nil {
		http.Error(w, "failed to store sink URL: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSinkURL removes the stored secret from the keychain. The env and
// config fallbacks are outside the engine's reach and stay untouched.
func (h SecretsHandler) DeleteSinkURL(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.DeleteSinkURL(cfg); err != nil {
		http.Error(w, "failed to delete sink URL: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SinkStatus reports whether the write path is usable without revealing the
// secret itself.
func (h SecretsHandler) SinkStatus(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	_, err := secrets.GetSinkURL(cfg)
	writeJSON(w, map[string]any{"configured": err == nil})
}
