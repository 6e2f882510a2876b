// Package main provides the yada CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envFile may set YADA_CONFIG_DIR and YADA_DATA_DIR. Variables already in
// the environment win over the file.
const envFile = ".env"

func main() {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: reading %s: %v\n", envFile, err)
	}

	a := newApp()
	if err := execute(a, newRootCmd(a)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
