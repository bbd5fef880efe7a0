package main

import "github.com/Rorical/DictPanel/cmd"

func main() {
	cmd.Execute()
}
