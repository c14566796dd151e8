// Command semcheck is the standalone CLI for the semantic analyzer.
package main

import "github.com/noobshow/fcc/cmd"

func main() {
	cmd.Execute()
}
