package main

import "github.com/kantodex/kantodex/cmd"

func main() {
	cmd.Execute()
}
