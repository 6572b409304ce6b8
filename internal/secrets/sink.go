package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"leadboard-engine/internal/config"
)

const (
	// KeyringService groups the engine's secrets in the OS keychain.
	KeyringService = "leadboard"

	// EnvSinkURL overrides the keyring; handy for CI and headless boxes
	// without a keychain daemon.
	EnvSinkURL = "LEADBOARD_SINK_URL"
)

// GetSinkURL resolves the mutation sink endpoint: keyring, then env, then the
// plain config field. An Apps Script URL embeds its deploy secret, hence the
// keyring-first order.
func GetSinkURL(cfg config.Config) (string, error) {
	if acct := SinkKeyringAccount(cfg); acct != "" {
		u, err := keyring.Get(KeyringService, acct)
		if err == nil && strings.TrimSpace(u) != "" {
			return strings.TrimSpace(u), nil
		}
	}
	if u := strings.TrimSpace(os.Getenv(EnvSinkURL)); u != "" {
		return u, nil
	}
	if u := strings.TrimSpace(cfg.Sink.URL); u != "" {
		return u, nil
	}
	return "", errors.New("sink URL not found (set it in the keychain, " + EnvSinkURL + ", or sink.url)")
}

func SetSinkURL(cfg config.Config, url string) error {
	acct := SinkKeyringAccount(cfg)
	if acct == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(url) == "" {
		return errors.New("sink URL is empty")
	}
	return keyring.Set(KeyringService, acct, strings.TrimSpace(url))
}

func DeleteSinkURL(cfg config.Config) error {
	acct := SinkKeyringAccount(cfg)
	if acct == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, acct)
}

// SinkKeyringAccount scopes the secret per document so two dashboards on one
// machine don't trample each other.
func SinkKeyringAccount(cfg config.Config) string {
	if strings.TrimSpace(cfg.Sink.KeyringAccount) != "" {
		return cfg.Sink.KeyringAccount
	}
	if cfg.Sheet.DocumentID == "" {
		return ""
	}
	return "leadboard:sink:" + cfg.Sheet.DocumentID
}
