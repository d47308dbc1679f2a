package analytics

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docker/gabeacon/pkg/device"
)

func TestTransports(t *testing.T) {
	t.Parallel()

	transports := map[string]func() Transport{
		"http": func() Transport {
			return NewHTTPTransport(nil)
		},
		"helper": func() Transport {
			return NewHelperTransport(slog.New(slog.DiscardHandler), nil)
		},
	}

	for name, newTransport := range transports {
		t.Run(name+" sends GET and ignores status", func(t *testing.T) {
			t.Parallel()

			var (
				calls     atomic.Int32
				method    string
				userAgent string
				query     string
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				method = r.Method
				userAgent = r.Header.Get("User-Agent")
				query = r.URL.RawQuery
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer srv.Close()

			err := newTransport().Get(t.Context(), srv.URL+"/collect?v=1&t=event")
			require.NoError(t, err)

			assert.Equal(t, int32(1), calls.Load(), "status errors must not be retried")
			assert.Equal(t, http.MethodGet, method)
			assert.True(t, strings.HasPrefix(userAgent, "gabeacon/"), userAgent)
			assert.Equal(t, "v=1&t=event", query)
		})

		t.Run(name+" reports connection errors", func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
			rawURL := srv.URL + "/collect"
			srv.Close()

			err := newTransport().Get(t.Context(), rawURL)
			require.Error(t, err)
		})
	}
}

func TestTrackerEndToEnd(t *testing.T) {
	t.Parallel()

	queries := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collect", r.URL.Path)
		queries <- r.URL.RawQuery
	}))
	defer srv.Close()

	for _, transport := range []Transport{
		NewHTTPTransport(srv.Client()),
		NewHelperTransport(slog.New(slog.DiscardHandler), srv.Client()),
	} {
		tracker := NewTracker(
			WithTransport(transport),
			WithEndpoint(srv.URL+"/collect"),
			WithEnvironment(device.Static{}),
			WithLogger(slog.New(slog.DiscardHandler)),
		)
		tracker.Init(Config{TrackingID: "UA-1", AppName: "App", AppVersion: "1.0", DeviceID: "dev", Width: 320, Height: 480}).
			TrackEvent(t.Context(), "cat", "act", WithLabel("lbl"), WithValue(5))
		require.NoError(t, tracker.Wait(t.Context()))

		assert.Equal(t,
			"v=1&tid=UA-1&an=App&av=1.0&cid=dev&sr=320x480&vp=320x480&ul=en-US&sc=start&t=event&ec=cat&ea=act&el=lbl&ev=5",
			<-queries)
	}
}
