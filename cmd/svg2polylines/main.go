// Command svg2polylines extracts the polylines of SVG documents,
// and renders them as PNG or PDF previews.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
