package main

import (
	"github.com/bornholm/notes/internal/command"
	"github.com/bornholm/notes/internal/command/seed"
	"github.com/bornholm/notes/internal/command/serve"
)

func main() {
	command.Main(
		"notes",
		"Manage and serve the notes API",
		serve.Command(),
		seed.Command(),
	)
}
