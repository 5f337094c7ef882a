package main

import (
	"github.com/lehigh-university-libraries/scholarsim/cmd"
)

func main() {
	cmd.Execute()
}
