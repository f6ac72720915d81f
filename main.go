package main

import "github.com/mouse-blink/suppressor/cmd"

func main() {
	cmd.Execute()
}
