package main

import "arkdata/cmd"

func main() {
	cmd.Execute()
}
