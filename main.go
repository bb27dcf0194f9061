package main

import (
	_ "time/tzdata"

	"goldpost/cmd"
)

func main() {
	cmd.Execute()
}
