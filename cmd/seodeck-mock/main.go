package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"seodeck/internal/mockapi"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	autoPause := flag.Bool("auto-pause", false, "report auto_paused after scans")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	server := mockapi.New()
	server.SetAutoPause(*autoPause)

	log.WithField("addr", *addr).Info("mock backend listening")
	if err := http.ListenAndServe(*addr, server.Handler()); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
