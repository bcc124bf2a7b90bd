package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

var errInvalidNetAddress = errors.New("need address in a form `host:port`")

// NetAddress is a listen address flag value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a config holding only the values given on the
// command line.
//
// Flags:
//
//	-a                   server address, host:port
//	-grpc-address        grpc health address, host:port
//	-d                   database DSN (postgres on the server, sqlite on the client)
//	-c/-config           JSON or YAML config file path
//	-token-sign-key      bearer token verification key
//	-token-issuer        expected token issuer
//	-token               bearer token presented by the client
//	-request-timeout     server request timeout (e.g. "30s")
//	-max-upload-size     largest accepted attachment upload in bytes
//	-blob-driver         file, s3 or minio
//	-blob-dir            root directory of the file driver
//	-blob-bucket         object store bucket
//	-blob-endpoint       object store endpoint override
//	-blob-public-url     public URL prefix of stored blobs
//	-redis-addr          redis address of the change feed
//	-server-url          base URL the client connects to
//	-upload-concurrency  parallel attachment uploads on the client
//	-log-level           zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("policy-desk", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Expected token issuer")
	fs.StringVar(&cfg.App.Token, "token", "", "Bearer token used by the client")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.Blob.Driver, "blob-driver", "", "Blob driver: file, s3 or minio")
	fs.StringVar(&cfg.Storage.Blob.Dir, "blob-dir", "", "Blob directory for the file driver")
	fs.StringVar(&cfg.Storage.Blob.Bucket, "blob-bucket", "", "Object store bucket")
	fs.StringVar(&cfg.Storage.Blob.Endpoint, "blob-endpoint", "", "Object store endpoint")
	fs.StringVar(&cfg.Storage.Blob.PublicURL, "blob-public-url", "", "Public URL prefix of stored blobs")
	fs.StringVar(&cfg.Storage.Redis.Addr, "redis-addr", "", "Redis address for the change feed")
	fs.StringVar(&cfg.Adapter.ServerURL, "server-url", "", "Server base URL")
	fs.IntVar(&cfg.Workers.UploadConcurrency, "upload-concurrency", 0, "Parallel attachment uploads")
	fs.Int64Var(&cfg.Server.MaxUploadSize, "max-upload-size", 0, "Largest accepted attachment upload in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	cfg.Server.RequestTimeout = requestTimeout

	return &cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host may be empty, an IP (IPv6 in brackets) or
// a DNS name such as a compose service; the port must be 1-65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1-65535", errInvalidNetAddress, portStr)
	}
	if host != "" && net.ParseIP(host) == nil && !validHostname(host) {
		return fmt.Errorf("%w: bad host %q", errInvalidNetAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}

// validHostname accepts dot-separated labels of letters, digits and inner
// hyphens.
func validHostname(host string) bool {
	if len(host) > 253 {
		return false
	}
	for _, label := range strings.Split(host, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
				return false
			}
		}
	}
	return true
}
