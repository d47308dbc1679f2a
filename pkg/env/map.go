package env

import "context"

// MapProvider serves values from a fixed map, e.g. values collected from
// command line flags.
type MapProvider map[string]string

func (p MapProvider) GetEnv(_ context.Context, name string) (string, error) {
	return p[name], nil
}
