package network

import (
	"testing"

	"zesc_server/logic"
	"zesc_server/protocol"
)

func frame(t *testing.T, typ string, payload any) []byte {
	t.Helper()
	b, err := protocol.Encode(typ, payload)
	if err != nil {
		t.Fatalf("encode %s: %v", typ, err)
	}
	return b
}

func TestParseInput(t *testing.T) {
	c := &Client{ClientID: 3}

	in, err := c.parseInput(frame(t, protocol.MsgInput, protocol.Input{Ax: 2, Ay: -0.5}))
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	if in.Type != logic.InputMove || in.ClientID != 3 || in.Dir.X != 1 || in.Dir.Y != -0.5 {
		t.Fatalf("unexpected move %+v", in)
	}

	in, err = c.parseInput(frame(t, protocol.MsgTeam, protocol.TeamRequest{Team: -1}))
	if err != nil || in.Type != logic.InputTeam || in.Team != logic.TeamSpectators {
		t.Fatalf("unexpected team input %+v err=%v", in, err)
	}

	in, err = c.parseInput(frame(t, protocol.MsgChangeMap, protocol.ChangeMap{Map: "zesc2"}))
	if err != nil || in.Type != logic.InputChangeMap || in.Map != "zesc2" {
		t.Fatalf("unexpected map input %+v err=%v", in, err)
	}

	in, err = c.parseInput(frame(t, protocol.MsgKill, struct{}{}))
	if err != nil || in.Type != logic.InputKill {
		t.Fatalf("unexpected kill input %+v err=%v", in, err)
	}

	if _, err := c.parseInput(frame(t, "dance", struct{}{})); err == nil {
		t.Fatalf("expected unknown type error")
	}
	if _, err := c.parseInput([]byte("nope")); err == nil {
		t.Fatalf("expected decode error")
	}
}
