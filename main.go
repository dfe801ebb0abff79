package main

import "github.com/dotcommander/bluescout/cmd"

func main() {
	cmd.Execute()
}
