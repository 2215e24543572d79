package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the command-line configuration values bound to a flag set.
type Flags struct {
	address        string
	requestTimeout time.Duration
	maxParallel    int
	backend        string
	dir            string
	dsn            string
	logFile        string
	refreshCron    string
	configPath     string
}

// BindFlags registers the configuration flags on fs and returns the holder
// their values are parsed into.
//
// Flags:
//
//	-a/--address        blocks API base URL
//	--request-timeout   per-request timeout (e.g. "15s")
//	--max-parallel      month refresh parallelism
//	--storage-backend   identity storage backend (sqlite|diskv)
//	--data-dir          client data directory
//	-d/--dsn            sqlite database path
//	--log-file          log file path
//	--refresh-cron      periodic refresh cron spec ("off" disables)
//	-c/--config         JSON or YAML config file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.address, "address", "a", "", "Blocks API base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g. 15s, 1m)")
	fs.IntVar(&f.maxParallel, "max-parallel", 0, "Maximum parallel day requests during a month refresh")
	fs.StringVar(&f.backend, "storage-backend", "", "Identity storage backend: sqlite or diskv")
	fs.StringVar(&f.dir, "data-dir", "", "Client data directory")
	fs.StringVarP(&f.dsn, "dsn", "d", "", "SQLite database path")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.refreshCron, "refresh-cron", "", `Periodic calendar refresh cron spec ("off" disables)`)
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile: f.logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    f.address,
			RequestTimeout: f.requestTimeout,
			MaxParallel:    f.maxParallel,
		},
		Storage: Storage{
			Backend: f.backend,
			Dir:     f.dir,
			DB:      DB{DSN: f.dsn},
		},
		Workers: Workers{
			RefreshCron: f.refreshCron,
		},
		FilePath: f.configPath,
	}
}
