package network

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"zesc_server/logic"
	"zesc_server/protocol"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	maxFrame   = 1 << 16
)

var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Conn is the part of a websocket connection a Client needs.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Client struct {
	Hub       *Room
	Conn      Conn
	Send      chan []byte
	SessionID string
	ClientID  int
	Name      string
}

func NewClient(room *Room, conn Conn, name string) *Client {
	return &Client{
		Hub:       room,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		SessionID: uuid.NewString(),
		ClientID:  -1,
		Name:      name,
	}
}

func ServeWs(room *Room, w http.ResponseWriter, r *http.Request) {
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		room.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	conn.SetReadLimit(maxFrame)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	name := r.URL.Query().Get("name")
	client := NewClient(room, conn, name)
	if err := room.Join(client); err != nil {
		room.log.Info("join refused", zap.String("session_id", client.SessionID), zap.Error(err))
		if b, encErr := protocol.Encode(protocol.MsgError, protocol.Error{Reason: err.Error()}); encErr == nil {
			_ = conn.WriteMessage(websocket.BinaryMessage, b)
		}
		conn.Close()
		return
	}

	go client.writePump(conn)
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.Unregister <- c:
		case <-c.Hub.quit:
		}
		c.Conn.Close()
	}()
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}
		input, err := c.parseInput(message)
		if err != nil {
			c.Hub.log.Debug("dropping frame", zap.Int("client_id", c.ClientID), zap.Error(err))
			continue
		}
		c.Hub.Submit(input)
	}
}

// parseInput turns one client frame into a loop input.
func (c *Client) parseInput(message []byte) (logic.PlayerInput, error) {
	env, err := protocol.DecodeEnvelope(message)
	if err != nil {
		return logic.PlayerInput{}, err
	}
	in := logic.PlayerInput{ClientID: c.ClientID}
	switch env.T {
	case protocol.MsgInput:
		p, err := protocol.DecodePayload[protocol.Input](env)
		if err != nil {
			return in, err
		}
		in.Type = logic.InputMove
		in.Dir = logic.Vector2{X: clampAxis(p.Ax), Y: clampAxis(p.Ay)}
	case protocol.MsgKill:
		in.Type = logic.InputKill
	case protocol.MsgTeam:
		p, err := protocol.DecodePayload[protocol.TeamRequest](env)
		if err != nil {
			return in, err
		}
		in.Type = logic.InputTeam
		in.Team = logic.Team(p.Team)
	case protocol.MsgChangeMap:
		p, err := protocol.DecodePayload[protocol.ChangeMap](env)
		if err != nil {
			return in, err
		}
		in.Type = logic.InputChangeMap
		in.Map = p.Map
	default:
		return in, fmt.Errorf("unknown message type %q", env.T)
	}
	return in, nil
}

func clampAxis(v float32) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return float64(v)
}

func (c *Client) writePump(ws *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := ws.WriteMessage(websocket.BinaryMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendFrame queues an encoded frame, dropping it if the client is behind.
func (c *Client) SendFrame(t string, v any) {
	b, err := protocol.Encode(t, v)
	if err != nil {
		c.Hub.log.Warn("encode failed", zap.String("type", t), zap.Error(err))
		return
	}
	select {
	case c.Send <- b:
	default:
	}
}
