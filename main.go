package main

import "github.com/M6D6M6A/boys-surface/cmd"

func main() {
	cmd.Execute()
}
