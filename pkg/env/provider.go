package env

import "context"

type Provider interface {
	// GetEnv retrieves the value of an environment variable by name.
	// An unset variable yields an empty string and no error.
	GetEnv(ctx context.Context, name string) (string, error)
}
