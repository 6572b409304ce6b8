package secrets

import (
	"testing"

	"github.com/zalando/go-keyring"

	"leadboard-engine/internal/config"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Sheet.DocumentID = "doc-1"
	return cfg
}

func TestSinkURL_KeyringRoundTrip(t *testing.T) {
	// Arrange: in-memory keyring, no env fallback.
	keyring.MockInit()
	t.Setenv(EnvSinkURL, "")
	cfg := testConfig()

	// Act / Assert: set, read back, delete, read misses.
	if err := SetSinkURL(cfg, "https://script.example/exec"); err != nil {
		t.Fatalf("set: %v", err)
	}
	u, err := GetSinkURL(cfg)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u != "https://script.example/exec" {
		t.Errorf("url: got %q", u)
	}

	if err := DeleteSinkURL(cfg); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetSinkURL(cfg); err == nil {
		t.Error("expected not-found after delete")
	}
}

func TestGetSinkURL_EnvBeatsConfigField(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvSinkURL, "https://env.example/exec")
	cfg := testConfig()
	cfg.Sink.URL = "https://config.example/exec"

	u, err := GetSinkURL(cfg)

	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u != "https://env.example/exec" {
		t.Errorf("url: got %q, want the env value", u)
	}
}

func TestSinkKeyringAccount_ScopedPerDocument(t *testing.T) {
	cfg := testConfig()
	if acct := SinkKeyringAccount(cfg); acct != "leadboard:sink:doc-1" {
		t.Errorf("account: got %q", acct)
	}

	cfg.Sink.KeyringAccount = "custom"
	if acct := SinkKeyringAccount(cfg); acct != "custom" {
		t.Errorf("override: got %q", acct)
	}
}
