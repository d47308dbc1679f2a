package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docker/gabeacon/pkg/env"
)

func TestResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  Environment
		want string
	}{
		{
			name: "nil environment",
			env:  nil,
			want: "0x0",
		},
		{
			name: "outer size wins",
			env:  Static{OuterWidth: 1280, OuterHeight: 800, ScreenWidth: 1920, ScreenHeight: 1080},
			want: "1280x800",
		},
		{
			name: "falls back to screen size",
			env:  Static{OuterWidth: 1280, ScreenWidth: 1920, ScreenHeight: 1080},
			want: "1920x1080",
		},
		{
			name: "no signal",
			env:  Static{},
			want: "0x0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolution(tt.env))
		})
	}
}

func TestUserLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en-US", UserLanguage(nil))
	assert.Equal(t, "en-US", UserLanguage(Static{}))
	assert.Equal(t, "fr-FR", UserLanguage(Static{Lang: "fr-FR"}))
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		want   string
	}{
		{"en_US.UTF-8", "en-US"},
		{"de_DE@euro", "de-DE"},
		{"pt-br", "pt-BR"},
		{"fr", "fr"},
		{"C", ""},
		{"POSIX", ""},
		{"C.UTF-8", ""},
		{"", ""},
		{"not a locale!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeLanguage(tt.locale))
		})
	}
}

func TestTerminalLanguagePrecedence(t *testing.T) {
	t.Parallel()

	term := NewTerminalFromFd(-1, env.MapProvider{
		"LANG":        "de_DE.UTF-8",
		"LC_MESSAGES": "it_IT.UTF-8",
	})
	assert.Equal(t, "it-IT", term.Language())

	term = NewTerminalFromFd(-1, env.MapProvider{"LANG": "C"})
	assert.Empty(t, term.Language())
	assert.Equal(t, "en-US", UserLanguage(term))
}

func TestTerminalScreenSizeFromEnv(t *testing.T) {
	t.Parallel()

	term := NewTerminalFromFd(-1, env.MapProvider{"COLUMNS": "120", "LINES": "40"})
	w, h, ok := term.ScreenSize()
	require.True(t, ok)
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)

	term = NewTerminalFromFd(-1, env.MapProvider{"COLUMNS": "120", "LINES": "lots"})
	_, _, ok = term.ScreenSize()
	assert.False(t, ok)
}

func TestTerminalOuterSizeNotATerminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	term := NewTerminalFromFd(int(f.Fd()), env.MapProvider{})
	_, _, ok := term.OuterSize()
	assert.False(t, ok)
	assert.Equal(t, "0x0", Resolution(term))
}
