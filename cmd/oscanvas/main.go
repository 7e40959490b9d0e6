// oscanvas — terminal node-graph editor for OSland projects.
package main

import "github.com/osland/oscanvas/internal/cli"

func main() {
	cli.Execute()
}
