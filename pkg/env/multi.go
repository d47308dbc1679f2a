package env

import "context"

// MultiProvider asks each provider in order and returns the first non-empty
// value. Nil providers are skipped; the first error stops the lookup.
type MultiProvider struct {
	providers []Provider
}

var _ Provider = (*MultiProvider)(nil)

func NewMultiProvider(providers ...Provider) *MultiProvider {
	kept := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return &MultiProvider{providers: kept}
}

func (p *MultiProvider) GetEnv(ctx context.Context, name string) (string, error) {
	for _, provider := range p.providers {
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
