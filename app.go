package main

import "github.com/jenkinsci/tfs-plugin-sub001/cmd"

func main() {
	cmd.Run()
}
