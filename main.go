// main.go
package main

import cmd "github.com/mwiater/gonumstat/cmd/gonumstat"

// main starts the gonumstat CLI application by delegating to the cobra
// root command defined in the gonumstat package. It does not take any
// arguments and does not return a value.
func main() {
	cmd.Execute()
}
