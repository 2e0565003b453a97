package main

import "stack-manager/cmd"

func main() {
	cmd.Execute()
}
