package main

import "github.com/docsage/docsage/internal/cli"

func main() {
	cli.Execute()
}
