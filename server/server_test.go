package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
)

func TestServer(t *testing.T) {
	cache, err := ElasticStreaming.NewSolutionCache(4)
	require.NoError(t, err)
	ts := httptest.NewServer(NewServer("", cache).Handler())
	defer ts.Close()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	config := map[string]interface{}{"womersley": "8", "cauchy": "0.05", "pinned_zone_radius": "0.2"}
	{ // Unknown types are answered and the connection stays usable
		require.NoError(t, conn.WriteJSON(Request{Type: "start"}))
		var reply Reply
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "error", reply.Type)
		assert.Contains(t, reply.Error, "start")
	}
	{
		require.NoError(t, conn.WriteJSON(Request{Type: "simulate", Config: config, N: 21, Extent: 3}))
		var reply Reply
		require.NoError(t, conn.ReadJSON(&reply))
		require.Equal(t, "field", reply.Type, reply.Error)
		assert.Equal(t, 21, len(reply.X))
		require.Equal(t, 21, len(reply.Z))
		require.Equal(t, 21, len(reply.Z[10]))
		require.NotNil(t, reply.Z[10][10])
		assert.Equal(t, 0., *reply.Z[10][10])
		require.NotNil(t, reply.Layer)
		require.NotNil(t, reply.Layer.Thickness)
		assert.InDelta(t, 0.5230511236, *reply.Layer.Thickness, 1.e-7)
	}
	{ // Bad parameters are reported
		bad := map[string]interface{}{"womersley": "8", "cauchy": "0.05", "pinned_zone_radius": "1"}
		require.NoError(t, conn.WriteJSON(Request{Type: "simulate", Config: bad}))
		var reply Reply
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "error", reply.Type)
	}
	{ // Malformed messages are answered and the connection stays usable
		for _, msg := range []string{`{bad`, `{"type":"simulate","n":"five"}`} {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
			var reply Reply
			require.NoError(t, conn.ReadJSON(&reply))
			assert.Equal(t, "error", reply.Type)
			assert.Contains(t, reply.Error, "malformed")
		}
		require.NoError(t, conn.WriteJSON(Request{Type: "simulate", Config: config, N: 5}))
		var reply Reply
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "field", reply.Type, reply.Error)
	}
	assert.Equal(t, 1, cache.Len())
}

func TestHubEnqueue(t *testing.T) {
	cache, err := ElasticStreaming.NewSolutionCache(1)
	require.NoError(t, err)
	h := NewHub(nil, cache)
	{ // Requests queue while the loop is alive
		assert.True(t, h.enqueue(Request{Type: "simulate"}))
		for len(h.msg) < cap(h.msg) {
			h.msg <- Request{}
		}
	}
	{ // A stopped loop never blocks the reader
		close(h.done)
		done := make(chan bool)
		go func() { done <- h.enqueue(Request{Type: "simulate"}) }()
		select {
		case ok := <-done:
			assert.False(t, ok)
		case <-time.After(5 * time.Second):
			t.Fatal("enqueue blocked after the request loop stopped")
		}
	}
}

func TestSimulate(t *testing.T) {
	cache, err := ElasticStreaming.NewSolutionCache(2)
	require.NoError(t, err)
	{ // Diverging layers carry no thickness
		reply := Simulate(cache, Request{Type: "simulate", N: 5,
			Config: map[string]interface{}{"womersley": 8, "cauchy": 0.2, "pinned_zone_radius": 0.2}})
		require.Equal(t, "field", reply.Type, reply.Error)
		assert.True(t, reply.Layer.Diverging)
		assert.Nil(t, reply.Layer.Thickness)
		assert.Equal(t, 5, len(reply.Y))
	}
	{
		reply := Simulate(cache, Request{Type: "simulate", N: MaxN + 1,
			Config: map[string]interface{}{"womersley": 8, "cauchy": 0.2, "pinned_zone_radius": 0.2}})
		assert.Equal(t, "error", reply.Type)
		reply = Simulate(cache, Request{Type: "simulate", Config: map[string]interface{}{"cauchy": 0.2}})
		assert.Equal(t, "error", reply.Type)
	}
}
