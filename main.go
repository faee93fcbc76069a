package main

import "github.com/qobs-build/ipxact-compile/cmd"

func main() {
	cmd.Execute()
}
