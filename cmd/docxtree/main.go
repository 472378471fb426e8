package main

import "github.com/jdalgard/docxtree/internal/cmd"

func main() {
	cmd.Execute()
}
