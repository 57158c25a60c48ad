package main

import "github.com/mariotti/bookmark/cmd"

func main() {
	cmd.Execute()
}
