// Command htmldiff renders inline <ins>/<del> differences between two
// versions of an HTML document, and generates or applies the line-oriented
// diffs those renderings can be rebuilt from.
package main

import "os"

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
