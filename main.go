package main

import "segcut/internal/cli"

func main() {
	cli.Main()
}
