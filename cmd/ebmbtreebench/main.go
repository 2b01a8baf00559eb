package main

import "github.com/tgragnato/ebmbtreebench/cmd/ebmbtreebench/cmd"

func main() {
	cmd.Execute()
}
