package main

import (
	cmd "github.com/kerbaras/library/cmd/library"
)

func main() {
	cmd.Execute()
}
