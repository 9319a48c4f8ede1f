// ABOUTME: Entry point for the mdview command line tool
// ABOUTME: Converts, renders, previews and exports markdown documents from the terminal

package main

import (
	"fmt"
	"os"

	"mdpreview-api/infrastructure/clipboard"
)

func main() {
	cmd := newRootCmd(options{clipboard: clipboard.NewSystemClipboard()})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
