package root

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docker/gabeacon/pkg/analytics"
	"github.com/docker/gabeacon/pkg/config"
	"github.com/docker/gabeacon/pkg/device"
	"github.com/docker/gabeacon/pkg/env"
	"github.com/docker/gabeacon/pkg/httpclient"
)

const (
	transportHTTP   = "http"
	transportHelper = "helper"
)

type rootFlags struct {
	debugMode    bool
	enableOtel   bool
	otelShutdown func(context.Context) error

	configPath  string
	trackingID  string
	appName     string
	appVersion  string
	deviceID    string
	language    string
	width       int
	height      int
	anonymizeIP bool

	transport   string
	endpoint    string
	waitTimeout time.Duration
	sendTimeout time.Duration
	userAgent   string
	metrics     []string
	dimensions  []string
}

func (f *rootFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&f.debugMode, "debug", "d", false, "Enable debug logging")
	pf.BoolVarP(&f.enableOtel, "otel", "o", false, "Enable OpenTelemetry tracing")

	pf.StringVar(&f.configPath, "config", config.DefaultPath(), "Path to a YAML tracker configuration file")
	pf.StringVar(&f.trackingID, "tracking-id", "", "Analytics property, e.g. UA-12345678-99 (env "+config.EnvTrackingID+")")
	pf.StringVar(&f.appName, "app-name", "", "Application name (env "+config.EnvAppName+")")
	pf.StringVar(&f.appVersion, "app-version", "", "Application version (env "+config.EnvAppVersion+")")
	pf.StringVar(&f.deviceID, "device-id", "", "Stable client id; generated when empty (env "+config.EnvDeviceID+")")
	pf.StringVar(&f.language, "language", "", "User language; read from the locale when empty (env "+config.EnvUserLanguage+")")
	pf.IntVar(&f.width, "width", 0, "Screen width reported in sr and vp")
	pf.IntVar(&f.height, "height", 0, "Screen height reported in sr and vp")
	pf.BoolVar(&f.anonymizeIP, "anonymize-ip", false, "Ask the collector to anonymize the sender IP (aip=1)")

	pf.StringVar(&f.transport, "transport", transportHTTP, "HTTP transport: http or helper")
	pf.StringVar(&f.endpoint, "endpoint", analytics.CollectURL, "Collection endpoint")
	pf.DurationVar(&f.sendTimeout, "timeout", 10*time.Second, "Per-hit request timeout")
	pf.StringVar(&f.userAgent, "user-agent", "", "User-Agent header sent with hits (default gabeacon/<version>)")
	pf.DurationVar(&f.waitTimeout, "wait", 15*time.Second, "How long to wait for in-flight hits before exiting")
	pf.StringArrayVar(&f.metrics, "metric", nil, "Custom metric as INDEX=VALUE, attached to the hit (repeatable)")
	pf.StringArrayVar(&f.dimensions, "dimension", nil, "Custom dimension as INDEX=VALUE, attached to the hit (repeatable)")
}

// overrides returns the flags the user set, keyed by the environment
// variable they override.
func (f *rootFlags) overrides(cmd *cobra.Command) map[string]string {
	values := map[string]string{}
	set := func(flag, name, value string) {
		if cmd.Flags().Changed(flag) {
			values[name] = value
		}
	}
	set("tracking-id", config.EnvTrackingID, f.trackingID)
	set("app-name", config.EnvAppName, f.appName)
	set("app-version", config.EnvAppVersion, f.appVersion)
	set("device-id", config.EnvDeviceID, f.deviceID)
	set("language", config.EnvUserLanguage, f.language)
	set("width", config.EnvWidth, strconv.Itoa(f.width))
	set("height", config.EnvHeight, strconv.Itoa(f.height))
	set("anonymize-ip", config.EnvAnonymizeIP, strconv.FormatBool(f.anonymizeIP))
	return values
}

func (f *rootFlags) newTransport() (analytics.Transport, error) {
	// The tracker's per-hit timeout bounds requests, not the client.
	client := httpclient.NewHTTPClient(
		httpclient.WithTimeout(0),
		httpclient.WithUserAgent(f.userAgent),
	)

	switch f.transport {
	case transportHTTP:
		return analytics.NewHTTPTransport(client), nil
	case transportHelper:
		return analytics.NewHelperTransport(slog.Default(), client), nil
	default:
		return nil, fmt.Errorf("unknown transport %q, expected %s or %s", f.transport, transportHTTP, transportHelper)
	}
}

func (f *rootFlags) newTracker(cmd *cobra.Command) (*analytics.Tracker, error) {
	ctx := cmd.Context()
	provider := env.NewDefaultProvider(f.overrides(cmd))

	cfg, err := config.Load(ctx, f.configPath, provider)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	transport, err := f.newTransport()
	if err != nil {
		return nil, err
	}

	metrics, err := parseIndexed(f.metrics, "metric")
	if err != nil {
		return nil, err
	}
	dimensions, err := parseIndexed(f.dimensions, "dimension")
	if err != nil {
		return nil, err
	}

	tracker := analytics.NewTracker(
		analytics.WithTransport(transport),
		analytics.WithEndpoint(f.endpoint),
		analytics.WithSendTimeout(f.sendTimeout),
		analytics.WithEnvironment(device.NewTerminal(provider)),
		analytics.WithLogger(slog.Default()),
	).Init(cfg)

	for index, value := range metrics {
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid metric %d value %q: %w", index, value, err)
		}
		tracker.SetCustomMetric(index, n)
	}
	for index, value := range dimensions {
		tracker.SetCustomDimension(index, value)
	}

	return tracker, nil
}

func parseIndexed(pairs []string, kind string) (map[int]string, error) {
	out := make(map[int]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid %s %q, expected INDEX=VALUE", kind, pair)
		}
		index, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || index <= 0 {
			return nil, fmt.Errorf("invalid %s index %q, expected a positive integer", kind, key)
		}
		out[index] = value
	}
	return out, nil
}

// sendHit builds a tracker, fires one hit and waits for it to leave.
func (f *rootFlags) sendHit(cmd *cobra.Command, hit func(context.Context, *analytics.Tracker)) error {
	tracker, err := f.newTracker(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	hit(ctx, tracker)

	waitCtx, cancel := context.WithTimeout(ctx, f.waitTimeout)
	defer cancel()
	if err := tracker.Wait(waitCtx); err != nil {
		return RuntimeError{Err: err}
	}

	slog.Debug("Hit dispatched", "client_id", tracker.ClientID())
	return nil
}
