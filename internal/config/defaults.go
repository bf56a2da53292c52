package config

import "time"

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// defaults returns the values used when no source sets a field. Quota and GC
// numbers match the ceilings the service has always enforced.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BlobFormat: "legacy",
		},
		Storage: Storage{
			Backend: BackendFile,
			Files:   Files{Dir: "userdata"},
			Local:   Local{DSN: "notes.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			RateLimit:      20,
			RateBurst:      40,
		},
		Quota: Quota{
			CreateLimit:     300,
			UpdateLimit:     10000 * 86400,
			SharedNoteLimit: 1000,
		},
		GC: GC{
			SampleEvery: 10,
			SampleSize:  10,
			MaxIdle:     24 * 30 * 24 * time.Hour,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SyncInterval: time.Second,
			SaveInterval: time.Second,
		},
	}
}
