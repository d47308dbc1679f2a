package env

import (
	"context"
	"os"
)

type EnvVariableProvider struct{}

func NewEnvVariableProvider() *EnvVariableProvider {
	return &EnvVariableProvider{}
}

func (p *EnvVariableProvider) GetEnv(_ context.Context, name string) (string, error) {
	return os.Getenv(name), nil
}

// First returns the first non-empty value among names, in order.
func First(ctx context.Context, provider Provider, names ...string) (string, error) {
	for _, name := range names {
		value, err := provider.GetEnv(ctx, name)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}
	return "", nil
}
