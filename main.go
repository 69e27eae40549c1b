package main

import "ghbrowse/cmd"

func main() {
	cmd.Execute()
}
