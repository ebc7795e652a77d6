package main

import "github.com/adenhall/modenc/cmd"

func main() {
	cmd.Execute()
}
