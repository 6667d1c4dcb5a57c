package main

import "workout-go/cmd/server/commands"

func main() {
	commands.Execute()
}
