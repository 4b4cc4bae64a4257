package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/danunant/bbank/internal/flagx"
	"github.com/danunant/bbank/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the session validity either as a string
// like "15m" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	DatabaseDSN     string         `json:"database_dsn"`
	SeedDemoData    *bool          `json:"seed_demo_data"`
	SessionValidity timex.Duration `json:"session_validity"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given, nothing is loaded. Read or unmarshal errors panic, since
// a present-but-broken config file is not something to silently ignore.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SeedDemoData != nil {
		cfg.SeedDemoData = *jc.SeedDemoData
	}
	if jc.SessionValidity.Duration != 0 {
		cfg.SessionValidity = time.Duration(jc.SessionValidity.Duration)
	}
}
