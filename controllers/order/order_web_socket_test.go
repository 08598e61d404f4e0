package orderControllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	r := gin.New()
	r.GET("/ws", hub.OrderWebSocketHandler)

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(EventOrderPlaced, map[string]interface{}{"id": 7, "status": "Pending"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Type  string                 `json:"type"`
		Order map[string]interface{} `json:"order"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, EventOrderPlaced, msg.Type)
	assert.EqualValues(t, 7, msg.Order["id"])
	assert.Equal(t, "Pending", msg.Order["status"])

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Broadcast(EventOrderUpdated, map[string]interface{}{"id": 1})
	})
	assert.Zero(t, hub.Clients())
}
