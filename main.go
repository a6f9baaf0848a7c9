package main

import "github.com/lukman83/latino-market/cmd"

func main() {
	cmd.Execute()
}
