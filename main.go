package main

import (
	"github.com/Immortal-romantic/hotel-booking/cmd/server"
)

func main() {
	srv := server.NewServer()
	srv.Run()
}
