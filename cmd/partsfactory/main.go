package main

import "github.com/OpenTraceLab/OpenTraceParts/cmd/partsfactory/cmd"

func main() {
	cmd.Execute()
}
