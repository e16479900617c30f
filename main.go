package main

import "github.com/mectus11/bplan/cmd"

func main() {
	cmd.Execute()
}
