package main

import (
	"hostel/config"
	"hostel/di"
	"hostel/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()
	logger.Configure(config.Get())

	cli := &commandLine{
		admin:        di.InitializeAdmin,
		readPassword: readPasswordFunc,
	}

	if err := cli.app().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("admin command failed")
	}
}
