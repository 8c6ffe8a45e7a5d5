package main

import "github.com/LeJamon/goXRPLtx/internal/cli"

func main() {
	cli.Execute()
}
