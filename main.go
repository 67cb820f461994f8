package main

import "github.com/gaurav-prasanna/docforge/cmd"

func main() {
	cmd.Execute()
}
