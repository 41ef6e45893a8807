package protocol

import (
	"github.com/vmihailenco/msgpack/v5"
)

const (
	MsgHello     = "hello"
	MsgInput     = "input"
	MsgKill      = "kill"
	MsgTeam      = "team"
	MsgChangeMap = "change_map"
	MsgWelcome   = "welcome"
	MsgState     = "state"
	MsgError     = "error"
)

// Envelope wraps every frame in both directions.
type Envelope struct {
	T string             `msgpack:"t"`
	P msgpack.RawMessage `msgpack:"p"` // raw payload bytes
}
