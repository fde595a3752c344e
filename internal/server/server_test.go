package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// startTestServer runs the server behind httptest and returns a connected
// websocket client.
func startTestServer(t *testing.T, clock quartz.Clock) *websocket.Conn {
	t.Helper()

	srv := NewServer("unused", testLogger(), clock)
	go srv.run()
	t.Cleanup(func() { _ = srv.Stop() })

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func sendEvaluate(t *testing.T, conn *websocket.Conn, line string) Message {
	t.Helper()

	msg, err := NewMessage(MessageTypeEvaluate, EvaluateData{Line: line})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestServerEvaluate(t *testing.T) {
	t.Parallel()
	conn := startTestServer(t, quartz.NewReal())

	reply := sendEvaluate(t, conn, "5H 5C 6S 7S KD 2C 3S 8S 8D TD")
	require.Equal(t, MessageTypeResult, reply.Type)

	var data ResultData
	require.NoError(t, json.Unmarshal(reply.Data, &data))

	assert.Equal(t, "opponent wins", data.Outcome)
	assert.Equal(t, "Pair", data.Player.Category)
	assert.Equal(t, []string{"5", "5"}, data.Player.Deciding)
	assert.Equal(t, []string{"K", "7", "6"}, data.Player.Kickers)
	assert.Equal(t, []string{"8", "8"}, data.Opponent.Deciding)
}

func TestServerEvaluateDraw(t *testing.T) {
	t.Parallel()
	conn := startTestServer(t, quartz.NewReal())

	reply := sendEvaluate(t, conn, "AH KH QH JH TH AC KC QC JC TC")
	require.Equal(t, MessageTypeResult, reply.Type)

	var data ResultData
	require.NoError(t, json.Unmarshal(reply.Data, &data))

	assert.Equal(t, "draw", data.Outcome)
	assert.Equal(t, "Royal Flush", data.Player.Category)
	assert.Empty(t, data.Player.Deciding)
	assert.Empty(t, data.Player.Kickers)
}

func TestServerInvalidDuelKeepsConnectionOpen(t *testing.T) {
	t.Parallel()
	conn := startTestServer(t, quartz.NewReal())

	reply := sendEvaluate(t, conn, "not a duel line")
	require.Equal(t, MessageTypeError, reply.Type)

	var data ErrorData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.Equal(t, "invalid_duel", data.Code)

	// A valid request on the same connection still works.
	reply = sendEvaluate(t, conn, "5H 5C 6S 7S KD 2C 3S 8S 8D TD")
	assert.Equal(t, MessageTypeResult, reply.Type)
}

func TestServerUnknownMessageType(t *testing.T) {
	t.Parallel()
	conn := startTestServer(t, quartz.NewReal())

	require.NoError(t, conn.WriteJSON(Message{Type: "bogus"}))

	var reply Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageTypeError, reply.Type)
}

func TestServerPingOnMockClock(t *testing.T) {
	t.Parallel()
	mock := quartz.NewMock(t)
	conn := startTestServer(t, mock)

	// First request establishes the connection's write pump ticker.
	reply := sendEvaluate(t, conn, "5H 5C 6S 7S KD 2C 3S 8S 8D TD")
	require.Equal(t, MessageTypeResult, reply.Type)

	// Advance past the ping period; the connection must survive the ping
	// and keep answering.
	mock.Advance(pingPeriod)

	reply = sendEvaluate(t, conn, "2D 2C 3D 3C 4H 4D 4C 5D 5C 6H")
	assert.Equal(t, MessageTypeResult, reply.Type)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	srv := NewServer("unused", testLogger(), quartz.NewReal())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
