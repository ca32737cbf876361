package main

import "github.com/yarnuri/stampclock/cmd"

func main() {
	cmd.Execute()
}
