package main

import "github.com/relloyd/dwhpipe/cmd"

func main() {
	cmd.Execute()
}
