package main

import "github.com/agenthands/cocograph/internal/cli"

func main() {
	cli.Execute()
}
