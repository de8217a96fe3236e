package constants

import "time"

const (
	UsernameMinLength  = 3
	UsernameMaxLength  = 50
	PasswordMinLength  = 4
	PasswordMaxLength  = 128
	JWTSecretMinLength = 32

	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPPort       = "8080"
	DefaultRequestTimeout = 5 * time.Second
	DefaultAccessTokenTTL = 24 * time.Hour

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
