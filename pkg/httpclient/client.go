package httpclient

import (
	"net/http"
	"time"

	"github.com/docker/gabeacon/pkg/useragent"
)

type options struct {
	userAgent string
	timeout   time.Duration
}

type Opt func(*options)

// WithUserAgent overrides the default gabeacon User-Agent. Empty values are
// ignored.
func WithUserAgent(agent string) Opt {
	return func(o *options) {
		if agent != "" {
			o.userAgent = agent
		}
	}
}

// WithTimeout bounds every request made by the client. Zero means no timeout,
// leaving the deadline to the request context.
func WithTimeout(d time.Duration) Opt {
	return func(o *options) {
		o.timeout = d
	}
}

type userAgentTransport struct {
	agent string
	rt    http.RoundTripper
}

func (u *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r2 := req.Clone(req.Context())
	r2.Header.Set("User-Agent", u.agent)
	return u.rt.RoundTrip(r2)
}

func NewHTTPClient(opts ...Opt) *http.Client {
	o := options{
		userAgent: useragent.Header,
		timeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &http.Client{
		Timeout: o.timeout,
		Transport: &userAgentTransport{
			agent: o.userAgent,
			rt:    http.DefaultTransport,
		},
	}
}
