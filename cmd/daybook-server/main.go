// daybook-server runs the in-memory reference sync server. It backs local
// development and integration tests; production deployments use the hosted
// sync service instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"

	"github.com/daybook-app/daybook/internal/devserver"
	"github.com/daybook-app/daybook/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := logger.New("daybook-server")
	log.Info().Str("addr", *addr).Msg("starting dev sync server")

	srv := devserver.New(log)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
