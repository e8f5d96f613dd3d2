package main

import "snapshot-manager/cmd"

func main() {
	cmd.Execute()
}
