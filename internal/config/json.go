package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		HashKey    string `json:"hash_key"`
		Version    string `json:"version"`
		BlobFormat string `json:"blob_format"`
		SyncCode   string `json:"sync_code"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir string `json:"dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket       string `json:"bucket"`
			Region       string `json:"region"`
			Endpoint     string `json:"endpoint"`
			AccessKey    string `json:"access_key"`
			SecretKey    string `json:"secret_key"`
			Prefix       string `json:"prefix"`
			UsePathStyle bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Quota struct {
		CreateLimit     int64 `json:"create_limit"`
		UpdateLimit     int64 `json:"update_limit"`
		SharedNoteLimit int64 `json:"shared_note_limit"`
	} `json:"quota,omitempty"`

	GC struct {
		SampleEvery int      `json:"sample_every"`
		SampleSize  int      `json:"sample_size"`
		MaxIdle     Duration `json:"max_idle"`
	} `json:"gc,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		SaveInterval Duration `json:"save_interval"`
		GCSchedule   string   `json:"gc_schedule"`
	} `json:"workers,omitempty"`

	ImportFile string `json:"import_file"`
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
			HashKey:    jsonCfg.App.HashKey,
			Version:    jsonCfg.App.Version,
			BlobFormat: jsonCfg.App.BlobFormat,
			SyncCode:   jsonCfg.App.SyncCode,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Dir: jsonCfg.Storage.Files.Dir,
			},
			S3: S3{
				Bucket:       jsonCfg.Storage.S3.Bucket,
				Region:       jsonCfg.Storage.S3.Region,
				Endpoint:     jsonCfg.Storage.S3.Endpoint,
				AccessKey:    jsonCfg.Storage.S3.AccessKey,
				SecretKey:    jsonCfg.Storage.S3.SecretKey,
				Prefix:       jsonCfg.Storage.S3.Prefix,
				UsePathStyle: jsonCfg.Storage.S3.UsePathStyle,
			},
			Local: Local{
				DSN: jsonCfg.Storage.Local.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
		},
		Quota: Quota{
			CreateLimit:     jsonCfg.Quota.CreateLimit,
			UpdateLimit:     jsonCfg.Quota.UpdateLimit,
			SharedNoteLimit: jsonCfg.Quota.SharedNoteLimit,
		},
		GC: GC{
			SampleEvery: jsonCfg.GC.SampleEvery,
			SampleSize:  jsonCfg.GC.SampleSize,
			MaxIdle:     time.Duration(jsonCfg.GC.MaxIdle),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			SaveInterval: time.Duration(jsonCfg.Workers.SaveInterval),
			GCSchedule:   jsonCfg.Workers.GCSchedule,
		},
		ImportFile: jsonCfg.ImportFile,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
