package main

import "github.com/frahmantamala/teampulse/cmd"

func main() {
	cmd.Execute()
}
