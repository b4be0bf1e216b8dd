package main

import (
	"os"

	"github.com/hamidzr/movebox/internal/cli"
	"github.com/hamidzr/movebox/internal/logger"
	"github.com/hamidzr/movebox/model"
	"github.com/sirupsen/logrus"
)

func main() {
	stopProfiling := startProfiling()
	cmd := cli.InitCLI()
	logger.SetupLogger()
	err := cmd.Execute()
	stopProfiling()
	if err != nil {
		code, cause := model.ExitCodeFromError(err)
		logrus.Error(cause)
		os.Exit(int(code))
	}
}
