package main

import "github.com/notargets/gostreaming/cmd"

func main() {
	cmd.Execute()
}
