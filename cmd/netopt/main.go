package main

import "github.com/OpenTraceLab/OpenTraceNetlist/cmd/netopt/cmd"

func main() {
	cmd.Execute()
}
