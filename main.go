package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"coursedeck/cmd"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
