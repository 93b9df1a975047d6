package urltext

import (
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
)

// OutputName derives the output filename for an item: "{index}-{host}-{hash8}.txt".
// The hash is 8 hex characters of an xxhash of the full URL string, so the same
// URL at the same position always yields the same name, and distinct positions
// never collide even if hashes do. Pure function, no I/O.
func OutputName(index int, rawURL string) string {
	var host string
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}
	hash := uint32(xxhash.Sum64String(rawURL))
	return fmt.Sprintf("%d-%s-%08x.txt", index, host, hash)
}
