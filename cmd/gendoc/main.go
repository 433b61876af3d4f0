package main

import "gendoc/internal/cli"

func main() {
	cli.Execute()
}
