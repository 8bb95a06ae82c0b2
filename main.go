package main

import "resumeforge/cmd"

func main() {
	cmd.Execute()
}
