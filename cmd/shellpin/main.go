package main

import "shellpin/internal/cli"

func main() {
	cli.Execute()
}
