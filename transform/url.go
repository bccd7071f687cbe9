package transform

import (
	"net/url"

	jc "github.com/reoring/jsoncodable"
)

// URL converts between strings and absolute *url.URL values. Relative
// references such as "not-a-url" fail to decode; a nil URL fails to encode.
func URL() jc.Transformer[string, *url.URL] {
	return jc.NewTransformer("url",
		func(s string) (*url.URL, bool) {
			u, err := url.Parse(s)
			if err != nil || !u.IsAbs() {
				return nil, false
			}
			return u, true
		},
		func(u *url.URL) (string, bool) {
			if u == nil {
				return "", false
			}
			return u.String(), true
		},
	).WithFormat("uri")
}
