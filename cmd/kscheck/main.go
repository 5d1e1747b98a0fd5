// kscheck validates and rewrites kickstart installation files.
package main

import "kickstart/internal/cmd"

func main() {
	cmd.Execute()
}
