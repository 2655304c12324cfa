package main

import "mangacatalog/cmd/cli/command"

func main() {
	command.Execute()
}
