package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations ("30s", "5m").
type StructuredJSONConfig struct {
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		WSURL          string   `json:"ws_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		SessionPath string `json:"session_path"`
		CacheDSN    string `json:"cache_dsn"`
	} `json:"storage,omitempty"`

	Stream struct {
		BackoffBase  Duration `json:"backoff_base"`
		BackoffCap   Duration `json:"backoff_cap"`
		MaxAttempts  int      `json:"max_attempts"`
		PingInterval Duration `json:"ping_interval"`
	} `json:"stream,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
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

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			WSURL:          jsonCfg.Adapter.WSURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			SessionPath: jsonCfg.Storage.SessionPath,
			CacheDSN:    jsonCfg.Storage.CacheDSN,
		},
		Stream: Stream{
			BackoffBase:  time.Duration(jsonCfg.Stream.BackoffBase),
			BackoffCap:   time.Duration(jsonCfg.Stream.BackoffCap),
			MaxAttempts:  jsonCfg.Stream.MaxAttempts,
			PingInterval: time.Duration(jsonCfg.Stream.PingInterval),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
