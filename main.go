package main

import "github.com/they4kman/tsweep/cmd"

func main() {
	cmd.Execute()
}
