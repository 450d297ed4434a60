package main

import "github.com/emiliopalmerini/cloudbill/internal/cli"

func main() {
	cli.Execute()
}
