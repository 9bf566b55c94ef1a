package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avasiljevs/gpavault/internal/flagx"
	"github.com/avasiljevs/gpavault/internal/timex"
)

// JsonConfig is the DTO used for JSON unmarshalling. timex.Duration lets the
// file spell durations as "24h" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath         string         `json:"database_path"`
	SecretKey            string         `json:"secret_key"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// When no config flag is present the function returns without changes.
// Read or unmarshal errors panic; the caller decides whether to recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.DatabasePath = jc.DatabasePath
	cfg.SecretKey = jc.SecretKey
	cfg.SessionTokenValidity = time.Duration(jc.SessionTokenValidity.Duration)
}
