package main

import "github.com/clipperhouse/span/internal/cli"

func main() {
	cli.Execute()
}
