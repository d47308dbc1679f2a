package device

import (
	"context"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/docker/gabeacon/pkg/env"
)

// Terminal reads device signals from the controlling terminal and the
// process environment. The terminal size stands in for the outer window
// size; COLUMNS and LINES stand in for the screen size.
type Terminal struct {
	fd       int
	provider env.Provider
}

var _ Environment = (*Terminal)(nil)

func NewTerminal(provider env.Provider) *Terminal {
	return NewTerminalFromFd(int(os.Stdout.Fd()), provider)
}

func NewTerminalFromFd(fd int, provider env.Provider) *Terminal {
	if provider == nil {
		provider = env.NewEnvVariableProvider()
	}
	return &Terminal{fd: fd, provider: provider}
}

func (t *Terminal) OuterSize() (int, int, bool) {
	if !term.IsTerminal(t.fd) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(t.fd)
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

func (t *Terminal) ScreenSize() (int, int, bool) {
	ctx := context.Background()
	width, ok := t.intEnv(ctx, "COLUMNS")
	if !ok {
		return 0, 0, false
	}
	height, ok := t.intEnv(ctx, "LINES")
	if !ok {
		return 0, 0, false
	}
	return width, height, true
}

func (t *Terminal) Language() string {
	raw, err := env.First(context.Background(), t.provider, "LC_ALL", "LC_MESSAGES", "LANG")
	if err != nil {
		return ""
	}
	return NormalizeLanguage(raw)
}

func (t *Terminal) intEnv(ctx context.Context, name string) (int, bool) {
	value, err := t.provider.GetEnv(ctx, name)
	if err != nil || value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// NormalizeLanguage turns a POSIX locale such as "en_US.UTF-8" or
// "de_DE@euro" into a BCP 47 tag. It returns "" for the C/POSIX locales and
// for values that do not parse.
func NormalizeLanguage(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	switch locale {
	case "", "C", "POSIX":
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}
