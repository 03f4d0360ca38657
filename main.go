package main

import "github.com/nathanhack/matrixsteg/cmd"

func main() {
	cmd.Execute()
}
