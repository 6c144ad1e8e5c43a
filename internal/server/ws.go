package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/crimson-sun/errboard/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10 // must be less than pongWait
	maxMessageSize = 1024
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

type selectRequest struct {
	View string `json:"view"`
}

type selectResponse struct {
	View    string           `json:"view"`
	Version string           `json:"version,omitempty"`
	Spec    *model.ChartSpec `json:"spec,omitempty"`
	Error   *errorBody       `json:"error,omitempty"`
}

// wsClient serves one connection. Requests are answered one at a time, in
// the order they arrive.
type wsClient struct {
	srv  *Server
	conn *websocket.Conn
	send chan []byte
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	c := &wsClient{srv: s, conn: conn, send: make(chan []byte, sendBuffer)}
	slog.Debug("websocket connected", "remote", conn.RemoteAddr().String())

	go c.writePump()
	c.readPump()
}

// readPump reads selections and renders each before reading the next.
func (c *wsClient) readPump() {
	defer func() {
		close(c.send)
		slog.Debug("websocket closed", "remote", c.conn.RemoteAddr().String())
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read error", "error", err)
			}
			return
		}
		out, err := json.Marshal(c.respond(msg))
		if err != nil {
			slog.Error("encoding websocket response", "error", err)
			return
		}
		c.send <- out
	}
}

func (c *wsClient) respond(msg []byte) selectResponse {
	var req selectRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return selectResponse{Error: &errorBody{Code: codeBadRequest, Message: "expected {\"view\": \"...\"}"}}
	}

	snap := c.srv.store.Current()
	spec, err := c.srv.engine.HandleSelection(snap.Events, req.View)
	if err != nil {
		body := viewErrorBody(err, req.View)
		return selectResponse{View: req.View, Version: snap.Version, Error: &body}
	}
	return selectResponse{View: req.View, Version: snap.Version, Spec: &spec}
}

// writePump writes responses and keeps the connection alive with pings.
// It owns all writes to conn.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", "error", err)
				c.abort()
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.abort()
				return
			}
		}
	}
}

// abort closes the connection, unblocking readPump, and drains send until
// readPump closes it.
func (c *wsClient) abort() {
	c.conn.Close()
	for range c.send {
	}
}
