package main

import "floorops/cmd"

func main() {
	cmd.Execute()
}
