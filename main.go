package main

import "ossdisk/cmd"

func main() {
	cmd.Execute()
}
