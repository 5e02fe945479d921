package main

import (
	"event-registration/cmd"
	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
