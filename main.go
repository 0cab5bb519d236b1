package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/knightsfork/varchess/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := varchess(); err != nil {
		logrus.Fatal(err)
	}
}

func varchess() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
