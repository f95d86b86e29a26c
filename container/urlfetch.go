package container

import (
	"github.com/tinywasm/fetch"
)

// URLBinaryFetcher resolves a binary payload referenced by URL rather
// than stored inline, for fixtures where a binary item is supplied as
// a remote resource. Most callers pass local bytes and never construct
// one of these; it exists for the container reader/writer pair that
// does need to pull a binary part from a URL instead of a stream.
type URLBinaryFetcher struct{}

// Fetch retrieves the bytes at url.
func (URLBinaryFetcher) Fetch(url string) ([]byte, error) {
	var data []byte
	var fetchErr error
	done := make(chan struct{})
	fetch.Get(url).Send(func(resp *fetch.Response, err error) {
		if err != nil {
			fetchErr = err
		} else {
			data = resp.Body()
		}
		close(done)
	})
	<-done
	return data, fetchErr
}
