package contextual

import (
	"context"

	"github.com/liveiso/rescue-utils/internal/config"
	"github.com/liveiso/rescue-utils/internal/system"
)

// ctxKey distinguishes the values this package stores in a context.
type ctxKey uint8

const (
	utilLinuxKey ctxKey = iota
	configKey
)

// WithUtilLinux extends the context to provide the scanned UtilLinux.
func WithUtilLinux(ctx context.Context, ul *system.UtilLinux) context.Context {
	return context.WithValue(ctx, utilLinuxKey, ul)
}

// UtilLinux fetches the host's UtilLinux provided in ctx. A nil result means
// the host scan failed or was skipped.
func UtilLinux(ctx context.Context) *system.UtilLinux {
	if val := ctx.Value(utilLinuxKey); val != nil {
		if v, ok := val.(*system.UtilLinux); ok {
			return v
		}
		panic("incoherent context")
	}

	return nil
}

// WithConfig extends the context to provide the loaded configuration.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// Config fetches the configuration provided in ctx.
func Config(ctx context.Context) *config.Config {
	if val := ctx.Value(configKey); val != nil {
		if v, ok := val.(*config.Config); ok {
			return v
		}
		panic("incoherent context")
	}

	return nil
}
