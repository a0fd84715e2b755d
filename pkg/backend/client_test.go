package backend

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

type court struct {
	ID       int    `json:"id"`
	OpenTime string `json:"openTime"`
}

func newTestClient(t *testing.T, handler fasthttp.RequestHandler) Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		_ = fasthttp.Serve(ln, handler)
	}()

	hc := &fasthttp.Client{
		Dial: func(_ string) (net.Conn, error) {
			return ln.Dial()
		},
	}

	return New("http://backend.test/api/", HTTPClient(hc), Timeout(time.Second))
}

func TestClient_Get(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "/api/courts/7", string(ctx.Path()))
		assert.Equal(t, fasthttp.MethodGet, string(ctx.Method()))
		assert.Empty(t, ctx.Request.Header.Peek(fasthttp.HeaderAuthorization))

		ctx.SetContentType(mimeJSON)
		ctx.SetBodyString(`{"data":{"id":7,"openTime":"06:00"}}`)
	})

	var out court

	require.NoError(t, c.Get(context.Background(), "/courts/7", "", &out))
	assert.Equal(t, court{ID: 7, OpenTime: "06:00"}, out)
}

func TestClient_Post(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "Bearer token-1", string(ctx.Request.Header.Peek(fasthttp.HeaderAuthorization)))
		assert.Equal(t, mimeJSON, string(ctx.Request.Header.ContentType()))

		var in map[string]any
		assert.NoError(t, json.Unmarshal(ctx.PostBody(), &in))
		assert.Equal(t, "08:00", in["startTime"])

		ctx.SetStatusCode(fasthttp.StatusCreated)
		ctx.SetBodyString(`{"data":{"id":99}}`)
	})

	var out struct {
		ID int `json:"id"`
	}

	err := c.Post(context.Background(), "/bookings", "token-1", map[string]string{"startTime": "08:00"}, &out)

	require.NoError(t, err)
	assert.Equal(t, 99, out.ID)
}

func TestClient_Errors(t *testing.T) {
	t.Run("error: upstream message", func(t *testing.T) {
		c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
			ctx.SetStatusCode(fasthttp.StatusConflict)
			ctx.SetBodyString(`{"error":"court already booked"}`)
		})

		err := c.Post(context.Background(), "/bookings", "t", struct{}{}, nil)

		var be *Error
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusConflict, be.StatusCode)
		assert.Equal(t, "court already booked", be.Message)
	})

	t.Run("error: non json body", func(t *testing.T) {
		c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
			ctx.SetStatusCode(fasthttp.StatusBadGateway)
			ctx.SetBodyString("<html>bad gateway</html>")
		})

		err := c.Get(context.Background(), "/courts/1", "", &court{})

		var be *Error
		require.ErrorAs(t, err, &be)
		assert.Equal(t, fasthttp.StatusMessage(fasthttp.StatusBadGateway), be.Message)
	})

	t.Run("error: empty data", func(t *testing.T) {
		c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
			ctx.SetBodyString(`{"data":null}`)
		})

		err := c.Get(context.Background(), "/courts/1", "", &court{})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("error: canceled context", func(t *testing.T) {
		c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
			t.Error("request must not be sent")
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := c.Get(ctx, "/courts/1", "", &court{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
