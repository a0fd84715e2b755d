package backend

import (
	"time"

	"github.com/valyala/fasthttp"
)

type Option func(*client)

// HTTPClient replaces the default fasthttp client, e.g. to dial an in-memory listener.
func HTTPClient(hc *fasthttp.Client) Option {
	return func(c *client) {
		c.http = hc
	}
}

func Timeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}
