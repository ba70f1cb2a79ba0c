package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// logPathEnv overrides the client log file location.
const logPathEnv = "CLIENT_LOG"

func main() {
	logPath := os.Getenv(logPathEnv)
	if logPath == "" {
		logPath = logger.DefaultClientLogPath()
	}
	log, closer := logger.NewClientLogger("go-pass-vault-client", logPath)

	var app client.Client = client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	err := app.Run(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	closer.Close()
	if err != nil {
		os.Exit(1)
	}
}
