package main

import (
	"context"
	"log"
	"os"

	"investmentanalyzer/cmd"
	"investmentanalyzer/internal/logger"
)

func main() {
	lg := logger.New()
	lg.Infof("starting api, commit %s", os.Getenv("commit_hash"))

	apiHandler, secrets, err := cmd.InitializeDependencies(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
