package network

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"zesc_server/logic"
	"zesc_server/protocol"
)

var (
	ErrRoomFull    = errors.New("room is full")
	ErrJoinTimeout = errors.New("join timed out")
)

var joinTimeout = 2 * time.Second

type kickNotice struct {
	clientID int
	reason   string
}

type Room struct {
	ID         string
	Name       string
	Clients    map[int]*Client
	Register   chan *Client
	Unregister chan *Client
	GameLoop   *logic.GameLoop
	Config     *logic.GameConfig

	// OnKick is called from the game loop goroutine for every kicked player.
	OnKick func(p logic.Player, reason string)

	kicked chan kickNotice
	quit   chan struct{}
	log    *zap.Logger
}

func NewRoom(id string, name string, cfg *logic.GameConfig) *Room {
	r := &Room{
		ID:         id,
		Name:       name,
		Clients:    make(map[int]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		GameLoop:   logic.NewGameLoop(cfg),
		Config:     cfg,
		kicked:     make(chan kickNotice, logic.MaxClients),
		quit:       make(chan struct{}),
		log:        logic.Logger.With(zap.String("room", id)),
	}
	r.GameLoop.GameState.OnKick = r.onKick
	return r
}

func (r *Room) onKick(p *logic.Player, reason string) {
	if r.OnKick != nil {
		r.OnKick(*p, reason)
	}
	select {
	case r.kicked <- kickNotice{clientID: p.ClientID, reason: reason}:
	default:
	}
}

// Submit hands an input to the game loop.
func (r *Room) Submit(in logic.PlayerInput) {
	select {
	case r.GameLoop.InputChan <- in:
	case <-r.quit:
	}
}

// Join asks the game loop for a player slot and registers the client.
func (r *Room) Join(c *Client) error {
	reply := make(chan logic.JoinResult, 1)
	r.Submit(logic.PlayerInput{Type: logic.InputJoin, SessionID: c.SessionID, Name: c.Name, Reply: reply})

	select {
	case res := <-reply:
		if !res.OK {
			return ErrRoomFull
		}
		c.ClientID = res.ClientID
	case <-time.After(joinTimeout):
		go r.releaseLateJoin(reply)
		return ErrJoinTimeout
	}

	c.SendFrame(protocol.MsgWelcome, protocol.Welcome{
		ClientID:  c.ClientID,
		SessionID: c.SessionID,
		TickSpeed: r.Config.Server.TickSpeed,
	})
	select {
	case r.Register <- c:
	case <-r.quit:
	}
	return nil
}

// releaseLateJoin frees the slot of a join that answered after its client gave up.
func (r *Room) releaseLateJoin(reply <-chan logic.JoinResult) {
	select {
	case res := <-reply:
		if res.OK {
			r.log.Info("releasing timed out join", zap.Int("client_id", res.ClientID))
			r.Submit(logic.PlayerInput{Type: logic.InputLeave, ClientID: res.ClientID})
		}
	case <-r.quit:
	}
}

func (r *Room) Stop() {
	close(r.quit)
	r.GameLoop.StopChan <- true
}

func (r *Room) Run() {
	go r.GameLoop.Run()
	r.log.Info("room started", zap.Int("tick_speed", r.Config.Server.TickSpeed))

	for {
		select {
		case <-r.quit:
			return

		case client := <-r.Register:
			r.Clients[client.ClientID] = client

		case client := <-r.Unregister:
			if cur, ok := r.Clients[client.ClientID]; ok && cur == client {
				delete(r.Clients, client.ClientID)
				close(client.Send)
				r.Submit(logic.PlayerInput{Type: logic.InputLeave, ClientID: client.ClientID})
			}

		case k := <-r.kicked:
			if client, ok := r.Clients[k.clientID]; ok {
				client.SendFrame(protocol.MsgError, protocol.Error{Reason: k.reason})
				delete(r.Clients, k.clientID)
				close(client.Send)
			}

		case snapshots := <-r.GameLoop.SnapshotChan:
			r.broadcast(snapshots)
		}
	}
}

func (r *Room) broadcast(snapshots map[int]logic.Snapshot) {
	for id, client := range r.Clients {
		snap, ok := snapshots[id]
		if !ok {
			continue
		}
		client.SendFrame(protocol.MsgState, snap)
	}
}
