package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-backend blob storage backend (file, postgres, s3)
//	-f file storage directory
//	-d database DSN
//	-local-db client SQLite file
//	-c/-config json file path with configs
//	-hash-key request integrity hash key
//	-blob-format format of new blobs (legacy, v2)
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second per client IP
//	-server-url server base URL used by the client
//	-sync-interval client sync tick (e.g., "1s")
//	-sync-code <id>#<key> of the account to join
//	-gc-schedule cron spec of the scheduled sweep
//	-import JSON note tree to import on client start
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var backend, fileStorageDir, databaseDSN, localDSN string
	var jsonConfigPath string
	var hashKey, blobFormat string
	var requestTimeout time.Duration
	var rateLimit float64
	var serverURL string
	var syncInterval time.Duration
	var syncCode string
	var gcSchedule string
	var importFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&backend, "backend", "", "Blob storage backend: file, postgres or s3")
	flag.StringVar(&fileStorageDir, "f", "", "File storage directory")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&localDSN, "local-db", "", "Client SQLite file")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	flag.StringVar(&blobFormat, "blob-format", "", "Format of new blobs: legacy or v2")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second per client IP")
	flag.StringVar(&serverURL, "server-url", "", "Server base URL")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Client sync interval (e.g., 1s)")
	flag.StringVar(&syncCode, "sync-code", "", "Sync credentials <id>#<key>")
	flag.StringVar(&gcSchedule, "gc-schedule", "", "Cron spec of the scheduled blob sweep")
	flag.StringVar(&importFile, "import", "", "JSON note tree to import on start")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey:    hashKey,
			BlobFormat: blobFormat,
			SyncCode:   syncCode,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Dir: fileStorageDir,
			},
			Local: Local{
				DSN: localDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		Adapter: Adapter{
			HTTPAddress: serverURL,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			GCSchedule:   gcSchedule,
		},
		ImportFile:   importFile,
		JSONFilePath: jsonConfigPath,
	}
}

// String returns host:port, bracketing IPv6 hosts, or an empty string for
// the zero address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP
// literal; IPv6 literals are written in brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
