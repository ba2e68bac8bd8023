package main

import "github.com/YUKIMIKAMI/diary-app/internal/cli"

func main() {
	cli.Execute()
}
