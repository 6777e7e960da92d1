package main

import (
	"github.com/JHUAPL/meta-simulator/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
