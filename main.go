package main

import "vapor-store/cmd"

func main() {
	cmd.Execute()
}
