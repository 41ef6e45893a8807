package protocol

//input structs coming in from the client.

type Hello struct {
	V    int    `msgpack:"v"`              // version
	Name string `msgpack:"name,omitempty"` // optional name
}

type Input struct {
	Ax float32 `msgpack:"ax"` // -1..1 movement X
	Ay float32 `msgpack:"ay"` // -1..1 movement Y
}

type TeamRequest struct {
	Team int `msgpack:"team"`
}

type ChangeMap struct {
	Map string `msgpack:"map"`
}
