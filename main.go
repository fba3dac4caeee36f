package main

import "squash-cli/cmd"

func main() {
	cmd.Execute()
}
