// Command timberline sizes mass-timber joists, beams and columns from the
// command line using the same engine as the HTTP service.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
