package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from a JSON string in Go
// duration syntax (e.g. "30s", "1m").
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-based [Duration] type for timeout fields.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		Redis  struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
	}

	return cfg, nil
}
