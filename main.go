package main

import (
	"BlueRec/cmd"
)

func main() {
	cmd.Execute()
}
