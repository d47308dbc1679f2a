package env

import (
	"context"
	"log/slog"
)

// NoFailProvider turns lookup errors of the wrapped provider into empty
// values so a MultiProvider chain keeps going.
type NoFailProvider struct {
	provider Provider
}

var _ Provider = (*NoFailProvider)(nil)

func NewNoFailProvider(provider Provider) *NoFailProvider {
	return &NoFailProvider{
		provider: provider,
	}
}

func (p *NoFailProvider) GetEnv(ctx context.Context, name string) (string, error) {
	value, err := p.provider.GetEnv(ctx, name)
	if err != nil {
		slog.Debug("Ignoring environment lookup error", "name", name, "error", err)
		return "", nil
	}
	return value, nil
}
