package main

import "pms/internal/app/server"

func main() {
	server.Run()
}
