package main

import "jbpos/internal/cli"

func main() {
	cli.Execute()
}
