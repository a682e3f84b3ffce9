package main

import (
	"context"

	"github.com/scott-cotton/cli"

	_ "github.com/jsonexceller/exceller/plugin"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
