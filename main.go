package main

import "github.com/Tiliavir/temps/cmd"

func main() {
	cmd.Execute()
}
