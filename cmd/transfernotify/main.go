package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	app := &cliApp{}
	defer app.close()

	if err := fang.Execute(context.Background(), newRootCmd(app)); err != nil {
		app.close()
		os.Exit(1)
	}
}
