package main

import (
	"os"

	"patrolwatch/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
