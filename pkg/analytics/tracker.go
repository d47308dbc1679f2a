package analytics

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docker/gabeacon/pkg/device"
)

// CollectURL is the Measurement Protocol collection endpoint.
const CollectURL = "http://www.google-analytics.com/collect"

const (
	defaultMaxInFlight = 16
	defaultSendTimeout = 10 * time.Second
)

// Config identifies the analytics property, the application and the device.
// TrackingID, AppName and AppVersion are required.
type Config struct {
	TrackingID   string `yaml:"tracking_id"`
	AppName      string `yaml:"app_name"`
	AppVersion   string `yaml:"app_version"`
	DeviceID     string `yaml:"device_id,omitempty"`
	UserLanguage string `yaml:"user_language,omitempty"`
	// Width and Height override the resolution and viewport size when both
	// are positive.
	Width       int  `yaml:"width,omitempty"`
	Height      int  `yaml:"height,omitempty"`
	AnonymizeIP bool `yaml:"anonymize_ip,omitempty"`
}

// Tracker holds the session and device state folded into every hit.
type Tracker struct {
	logger    *gaLogger
	transport Transport
	env       device.Environment
	endpoint  string
	now       func() time.Time
	timeout   time.Duration

	mu                sync.Mutex
	profileID         string
	appName           string
	appVersion        string
	customerID        string
	screenResolution  string
	viewportSize      string
	userLanguage      string
	anonymizeIP       bool
	pendingMetrics    map[int]float64
	pendingDimensions map[int]string
	sessionStarted    bool
	initialized       bool

	// pending counts hits handed to send that have not finished. idle is
	// closed when it drops back to zero.
	pending int
	idle    chan struct{}

	// inflight only bounds concurrent sends; completion is tracked by
	// pending, so inflight.Wait is never called.
	inflight errgroup.Group
}

type Option func(*Tracker)

func WithTransport(transport Transport) Option {
	return func(t *Tracker) {
		if transport != nil {
			t.transport = transport
		}
	}
}

// WithEnvironment sets where resolution and language are read from when
// Config leaves them unset. A nil environment reports "0x0" and "en-US".
func WithEnvironment(env device.Environment) Option {
	return func(t *Tracker) {
		t.env = env
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = newGALogger(logger)
	}
}

// WithEndpoint replaces CollectURL, e.g. with the /debug/collect validation
// endpoint or a local test server.
func WithEndpoint(endpoint string) Option {
	return func(t *Tracker) {
		if endpoint != "" {
			t.endpoint = endpoint
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithMaxInFlight bounds the number of outstanding requests. Hits fired
// while the bound is reached are dropped.
func WithMaxInFlight(n int) Option {
	return func(t *Tracker) {
		if n > 0 {
			t.inflight.SetLimit(n)
		}
	}
}

// WithSendTimeout bounds each request. The default is 10s.
func WithSendTimeout(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// NewTracker returns an uninitialized tracker. Call Init before tracking.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		logger:            newGALogger(nil),
		endpoint:          CollectURL,
		now:               time.Now,
		timeout:           defaultSendTimeout,
		pendingMetrics:    make(map[int]float64),
		pendingDimensions: make(map[int]string),
	}
	t.inflight.SetLimit(defaultMaxInFlight)

	t.env = device.NewTerminal(nil)
	for _, opt := range opts {
		opt(t)
	}
	if t.transport == nil {
		t.transport = NewHTTPTransport(nil)
	}

	return t
}

// Init configures the tracker. When a required field is missing the error is
// logged and the tracker is returned unchanged. Init never transmits.
func (t *Tracker) Init(cfg Config) *Tracker {
	if cfg.TrackingID == "" || cfg.AppName == "" || cfg.AppVersion == "" {
		t.logger.Error("Required parameters: trackingId, appName, appVersion")
		return t
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.profileID = cfg.TrackingID
	t.appName = cfg.AppName
	t.appVersion = cfg.AppVersion

	t.customerID = cfg.DeviceID
	if t.customerID == "" {
		t.customerID = randomDeviceID(t.now())
	}

	t.userLanguage = cfg.UserLanguage
	if t.userLanguage == "" {
		t.userLanguage = device.UserLanguage(t.env)
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		t.screenResolution = device.FormatSize(cfg.Width, cfg.Height)
	} else {
		t.screenResolution = device.Resolution(t.env)
	}
	t.viewportSize = t.screenResolution

	if cfg.AnonymizeIP {
		t.anonymizeIP = true
	}

	t.initialized = true
	t.logger.Debug("Initialized", "tracking_id", t.profileID, "client_id", t.customerID, "resolution", t.screenResolution, "language", t.userLanguage)

	return t
}

func (t *Tracker) Initialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized
}

// ClientID returns the cid reported with every hit.
func (t *Tracker) ClientID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.customerID
}

func randomDeviceID(now time.Time) string {
	return "rnd." + strconv.FormatInt(now.UnixMilli(), 10)
}
