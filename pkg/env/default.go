package env

// NewDefaultProvider looks up overrides first, then the process environment.
func NewDefaultProvider(overrides map[string]string) Provider {
	return NewMultiProvider(
		MapProvider(overrides),
		NewNoFailProvider(NewEnvVariableProvider()),
	)
}
