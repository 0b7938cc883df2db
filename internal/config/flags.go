package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
// Parsing stops at the first non-flag argument, so global configuration
// flags must precede the CLI subcommand name.
//
// Flags:
//
//	-a backend base URL (e.g. http://localhost:8000)
//	-ws event-stream base URL (e.g. ws://localhost:8000)
//	-t request timeout (e.g. "30s", "1m")
//	-session session file path
//	-cache local cache SQLite DSN
//	-refresh portfolio refresh interval (e.g. "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ContinueOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var baseURL, wsURL string
	var requestTimeout time.Duration
	var sessionPath, cacheDSN string
	var refreshInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&baseURL, "a", "", "Backend base URL")
	fs.StringVar(&wsURL, "ws", "", "Event-stream base URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sessionPath, "session", "", "Session file path")
	fs.StringVar(&cacheDSN, "cache", "", "Local cache SQLite DSN")
	fs.DurationVar(&refreshInterval, "refresh", 0, "Portfolio refresh interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// unknown flags belong to the subcommand layer
	fs.SetOutput(nopWriter{})
	_ = fs.Parse(args)

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			WSURL:          wsURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionPath: sessionPath,
			CacheDSN:    cacheDSN,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
