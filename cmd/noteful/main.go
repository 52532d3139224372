// Command noteful serves the notes REST API.
//
// @title Noteful API
// @version 1.0
// @description Notes organised into folders and labelled with tags.
// @BasePath /
package main

import (
	"os"

	_ "noteful/docs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
