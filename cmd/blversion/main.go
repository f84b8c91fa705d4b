package main

import "github.com/blend2d/blversion/cmd/blversion/cmd"

func main() {
	cmd.Execute()
}
