package main

import "github.com/equinor/gothermo/cmd"

func main() {
	cmd.Execute()
}
