// Command highline walks through a short interactive questionnaire built
// with the highline prompt library.
package main

import (
	"os"
	"time"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
