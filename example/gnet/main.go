// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	console "github.com/y21/dash-website"
	"github.com/y21/dash-website/compat"
)

// Example gnet event handler; engine-internal log output lands in the debug
// console instead of a file.
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	dbg := console.NewConsole()

	adapter := compat.NewGnetAdapter(dbg)

	err := gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(adapter),
	)
	if err != nil {
		panic(err)
	}
}
