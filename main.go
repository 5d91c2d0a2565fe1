package main

import "github.com/gulipalli123/DesignPatterns/cmd"

func main() {
	cmd.Execute()
}
