package main

import "kinorelay/cmd"

func main() {
	cmd.Execute()
}
