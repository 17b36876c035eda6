package main

import "github.com/pfrederiksen/pogo-library/internal/cli"

func main() {
	cli.ExecuteDigest()
}
