package main

import "github.com/sonavox/voiceguard/cmd"

func main() {
	cmd.Execute()
}
