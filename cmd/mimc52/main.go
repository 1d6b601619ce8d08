package main

import "github.com/TheusHen/mimc52/cmd/mimc52/cmd"

func main() {
	cmd.Execute()
}
