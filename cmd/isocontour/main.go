package main

import "github.com/yanrabe/isocontour/cmd/isocontour/cmd"

func main() {
	cmd.Execute()
}
