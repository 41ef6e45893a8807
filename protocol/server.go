package protocol

type Welcome struct {
	ClientID  int    `msgpack:"clientId"`
	SessionID string `msgpack:"sessionId"`
	TickSpeed int    `msgpack:"tickSpeed"`
}

type Error struct {
	Reason string `msgpack:"reason"`
}
