package main

import "github.com/go-drift/viewproxy/cmd/proxydump/cmd"

func main() {
	cmd.Execute()
}
