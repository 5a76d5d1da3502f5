package main

import (
	"github.com/updatewatch/updatewatch/cmd"
)

func main() {
	cmd.Execute()
}
