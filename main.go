package main

import "github.com/Pryowin/clndir/cmd"

func main() {
	cmd.Execute()
}
