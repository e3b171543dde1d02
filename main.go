package main

import "github.com/wjaskula/metatsp/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
