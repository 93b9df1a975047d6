package urltext

import "net/url"

// IsURL reports whether candidate is a well-formed absolute URL with both
// a scheme and a host. It is a pure filter: malformed input returns false,
// never an error.
func IsURL(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
