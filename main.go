package main

import "github.com/codefugue/codefugue/cmd"

func main() {
	cmd.Execute()
}
