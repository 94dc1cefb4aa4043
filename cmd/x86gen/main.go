// Command x86gen reads a declarative instruction variant table and emits
// the generated Go source backing the public encoder surface. It is the
// only external driver this module ships: everything downstream of the
// variant table (architecture/x86_64 primitives, the generated gen/x86enc
// package) is pure, allocation-free Go with no knowledge of this command.
package main

import "github.com/keurnel/x86encode/cmd/x86gen/cmd"

func main() {
	cmd.Execute()
}
