package main

import (
	"os"

	"github.com/sisu-network/lib/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
