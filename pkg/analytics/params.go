package analytics

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const protocolVersion = "1"

// Measurement Protocol v1 parameter keys.
const (
	keyVersion          = "v"
	keyTrackingID       = "tid"
	keyAppName          = "an"
	keyAppVersion       = "av"
	keyClientID         = "cid"
	keyScreenResolution = "sr"
	keyViewportSize     = "vp"
	keyUserLanguage     = "ul"
	keySessionControl   = "sc"
	keyCustomMetric     = "cm"
	keyCustomDimension  = "cd"
	keyHitType          = "t"
	keyScreenName       = "cd"
	keyDocumentPath     = "dp"
	keyDocumentTitle    = "dt"
	keyEventCategory    = "ec"
	keyEventAction      = "ea"
	keyEventLabel       = "el"
	keyEventValue       = "ev"
	keyAnonymizeIP      = "aip"
)

// HitType is the value of the t parameter.
type HitType string

const (
	HitTypeScreenView HitType = "screenview"
	HitTypePageView   HitType = "pageview"
	HitTypeEvent      HitType = "event"
)

const (
	sessionStart = "start"
	sessionEnd   = "end"
)

// Params is an insertion-ordered parameter set.
type Params = orderedmap.OrderedMap[string, string]

// buildParameters folds the tracker state into a fresh parameter set. It
// starts the session on first use and drains the pending custom metrics and
// dimensions. Callers must hold t.mu.
func (t *Tracker) buildParameters() *Params {
	if !t.initialized {
		t.logger.Debug("Tracking before Init, hit will carry empty identity")
	}

	params := orderedmap.New[string, string]()
	params.Set(keyVersion, protocolVersion)
	params.Set(keyTrackingID, t.profileID)
	params.Set(keyAppName, t.appName)
	params.Set(keyAppVersion, t.appVersion)
	params.Set(keyClientID, t.customerID)
	params.Set(keyScreenResolution, t.screenResolution)
	params.Set(keyViewportSize, t.viewportSize)
	params.Set(keyUserLanguage, t.userLanguage)

	if !t.sessionStarted {
		t.sessionStarted = true
		params.Set(keySessionControl, sessionStart)
	}

	for _, index := range slices.Sorted(maps.Keys(t.pendingMetrics)) {
		params.Set(keyCustomMetric+strconv.Itoa(index), formatMetric(t.pendingMetrics[index]))
	}
	clear(t.pendingMetrics)

	for _, index := range slices.Sorted(maps.Keys(t.pendingDimensions)) {
		params.Set(keyCustomDimension+strconv.Itoa(index), t.pendingDimensions[index])
	}
	clear(t.pendingDimensions)

	if t.anonymizeIP {
		params.Set(keyAnonymizeIP, "1")
	}

	return params
}

func formatMetric(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// encodeQuery renders params as "?k=v&..." in insertion order. Keys and
// values are query-escaped with spaces as %20 rather than "+". This also
// escapes !'()* which the collector decodes the same either way.
func encodeQuery(params *Params) string {
	parts := make([]string, 0, params.Len())
	for key, value := range params.FromOldest() {
		parts = append(parts, escape(key)+"="+escape(value))
	}
	return "?" + strings.Join(parts, "&")
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
