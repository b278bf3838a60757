package main

import (
	"github.com/wordcrumble/wordcrumble-go/internal/cli"
)

func main() {
	cli.Execute()
}
