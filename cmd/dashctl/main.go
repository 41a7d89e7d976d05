package main

import "syncboard/cmd/dashctl/cmd"

func main() {
	cmd.Execute()
}
