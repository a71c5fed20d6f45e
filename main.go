package main

import "departure-board/cmd"

func main() {
	cmd.Execute()
}
