package main

import "github.com/hostkit/rental-tools/internal/cli"

func main() {
	cli.Execute()
}
