package main

import "github.com/ntxvolley/club-report/internal/cli"

func main() {
	cli.Execute()
}
