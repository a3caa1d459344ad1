package main

import "github.com/mbruckner/tourwatch/internal/cli"

func main() {
	cli.Execute()
}
