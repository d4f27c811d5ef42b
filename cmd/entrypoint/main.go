package main

import (
	// Import the cmd directory with root.go
	"github.com/redjax/encsweep/cmd"
)

func main() {
	cmd.Execute()
}
