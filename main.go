package main

import "github.com/theirongolddev/kitnet/cmd"

func main() {
	cmd.Execute()
}
