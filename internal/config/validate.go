package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims string fields, fills defaults, and checks the
// fields the engine cannot run without.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Sheet.DocumentID = strings.TrimSpace(out.Sheet.DocumentID)
	out.Sheet.BaseURL = strings.TrimSuffix(strings.TrimSpace(out.Sheet.BaseURL), "/")
	out.Tabs.Leads = strings.TrimSpace(out.Tabs.Leads)
	out.Tabs.Messages = strings.TrimSpace(out.Tabs.Messages)
	out.Sink.URL = strings.TrimSpace(out.Sink.URL)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Sheet.DocumentID == "" {
		res.addErr("sheet.document_id is required")
	}
	if out.Sheet.DirectoryGID < 0 {
		res.addErr("sheet.directory_gid must be >= 0")
	}
	if out.Sheet.ReqPerSec <= 0 {
		out.Sheet.ReqPerSec = 4
	}
	if out.Sheet.Burst <= 0 {
		out.Sheet.Burst = 4
	}
	if out.Sheet.TabTimeoutSeconds < 0 {
		res.addErr("sheet.tab_timeout_seconds must be >= 0")
	}

	if out.Tabs.Leads == "" {
		res.addWarn("tabs.leads is empty; the curated leads tab will not be fetched")
	}
	if out.Tabs.Messages == "" {
		res.addWarn("tabs.messages is empty; the message queue and approvals will be unavailable")
	}

	if out.Sink.URL != "" && !strings.HasPrefix(out.Sink.URL, "https://") {
		res.addWarn("sink.url is not https; the deploy secret would travel in the clear")
	}

	return out, res
}
