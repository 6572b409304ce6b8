package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Sheet struct {
		DocumentID        string  `yaml:"document_id" json:"document_id"`
		DirectoryGID      int64   `yaml:"directory_gid" json:"directory_gid"`
		BaseURL           string  `yaml:"base_url" json:"base_url"` // override for dev/tests
		ReqPerSec         float64 `yaml:"req_per_sec" json:"req_per_sec"`
		Burst             int     `yaml:"burst" json:"burst"`
		TabTimeoutSeconds int     `yaml:"tab_timeout_seconds" json:"tab_timeout_seconds"`
	} `yaml:"sheet" json:"sheet"`

	Tabs struct {
		Leads    string `yaml:"leads" json:"leads"`
		Messages string `yaml:"messages" json:"messages"`
	} `yaml:"tabs" json:"tabs"`

	Sink struct {
		// URL may be left empty and supplied via keyring or LEADBOARD_SINK_URL
		// instead; Apps Script URLs embed a deploy secret, so the keyring is
		// the recommended home.
		URL            string `yaml:"url" json:"url"`
		KeyringAccount string `yaml:"keyring_account" json:"keyring_account"`
	} `yaml:"sink" json:"sink"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
