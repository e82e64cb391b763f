package main

import (
	"os"

	"github.com/jackwhich/jenkins_api/pkg/command"
)

func main() {
	if err := command.Run(); err != nil {
		os.Exit(1)
	}
}
