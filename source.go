package jsoncodable

import (
	"sync"

	"github.com/reoring/jsoncodable/i18n"
	"github.com/reoring/jsoncodable/source/gojson"
)

// JSONDriver converts between document bytes and the JSON value tree. Drivers
// must return canonical trees: map[string]any objects, []any arrays, and
// string, bool, number or nil leaves. Implementations live under source/.
type JSONDriver interface {
	Name() string
	Unmarshal(data []byte) (any, error)
	Marshal(v any) ([]byte, error)
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = gojson.Driver()
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = gojson.Driver()
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used by Parse and Marshal.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// ParseWith parses data with an explicit driver. Driver failures are reported
// as a parse_error issue at the root.
func ParseWith(d JSONDriver, data []byte) (any, error) {
	v, err := d.Unmarshal(data)
	if err != nil {
		return nil, Issues{{
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil) + " (" + d.Name() + "): " + err.Error(),
			Cause:   err,
		}}
	}
	return v, nil
}

// MarshalWith serializes a value tree with an explicit driver.
func MarshalWith(d JSONDriver, v any) ([]byte, error) {
	b, err := d.Marshal(v)
	if err != nil {
		return nil, asPathIssues("", err)
	}
	return b, nil
}
