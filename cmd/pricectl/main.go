// Command pricectl previews, checks and exports the pricing catalogs.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
