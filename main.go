package main

import "github.com/oaseass/oaseass-saju/cmd"

func main() {
	cmd.Execute()
}
