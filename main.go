package main

import "github.com/focuspulse/pulse/cmd"

func main() {
	cmd.Execute()
}
