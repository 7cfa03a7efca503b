package main

import "github.com/mvp-joe/bcl-sources/internal/cli"

func main() {
	cli.Execute()
}
