package main

import (
	"github.com/jnalanko/unitig-flipper/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
