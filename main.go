package main

import "github.com/Tiliavir/hourbill/cmd"

func main() {
	cmd.Execute()
}
