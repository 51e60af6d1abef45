package main

import "cpufetch/cmd"

func main() {
	cmd.Execute()
}
