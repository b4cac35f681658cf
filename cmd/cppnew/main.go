package main

import (
	"github.com/tacogips/cppnew/internal/cli"
)

func main() {
	cli.Execute()
}
