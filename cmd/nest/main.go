package main

import "github.com/arl/nest/cmd/nest/cmd"

func main() {
	cmd.Execute()
}
