package main

import "github.com/buildpeak/commitmsg/cmd"

func main() {
	cmd.Execute()
}
