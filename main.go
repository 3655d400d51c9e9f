package main

import "github.com/mspanwala8/pokestat/internal/cli"

func main() {
	cli.Execute()
}
