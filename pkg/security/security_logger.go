// Package security provides structured logging for auth-related events.
// Kept separate from the application logger so the auth trail can be shipped
// or filtered independently.
package security

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventLoginSuccess     EventType = "login_success"
	EventLoginFailed      EventType = "login_failed"
	EventLoginRateLimited EventType = "login_rate_limited"
	EventInvalidToken     EventType = "invalid_token"
)

// SecurityLogger writes auth events as structured JSON via Zap.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *SecurityLogger
	initOnce      sync.Once
)

// InitSecurityLogger initializes the package-level logger. Safe to call more
// than once; only the first call wins.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	initOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zl, err := cfg.Build(zap.WithCaller(false))
		if err != nil {
			zl = zap.NewNop()
		}
		defaultLogger = &SecurityLogger{
			zapLogger:   zl,
			serviceName: serviceName,
			environment: environment,
		}
	})
	return defaultLogger
}

// LogAuthEvent records one auth event. Username is logged verbatim: the
// allow-list holds team accounts, not end-user PII.
func LogAuthEvent(event EventType, username, ip, requestID string) {
	l := defaultLogger
	if l == nil {
		return
	}
	l.zapLogger.Info("security_event",
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event)),
		zap.String("username", username),
		zap.String("ip", ip),
		zap.String("request_id", requestID),
		zap.Time("at", time.Now().UTC()),
	)
}

// Sync flushes buffered events; called on shutdown.
func Sync() {
	if defaultLogger != nil {
		_ = defaultLogger.zapLogger.Sync()
	}
}
