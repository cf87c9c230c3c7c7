package main

import "github.com/timvw/swap-sentinel/cmd"

func main() {
	cmd.Execute()
}
