// Command webform serves a YAML-described set of forms over HTTP, exposing
// the engine's check/show/commit operations per field. Configuration comes
// from the environment: WEBFORM_ADDR, WEBFORM_FORMS, WEBFORM_LOG_FORMAT.
package main

import (
	"net/http"
	"os"

	"github.com/zoumapps/validation/pkg/config"
	"github.com/zoumapps/validation/pkg/logger"
	"github.com/zoumapps/validation/webform"
)

func main() {
	var cfg webform.Config
	config.MustLoad(&cfg)

	log := logger.New(logger.WithFormat(cfg.LogFormat))

	desc, err := webform.LoadDescription(cfg.FormsPath)
	if err != nil {
		log.Error("load form description", "path", cfg.FormsPath, "error", err)
		os.Exit(1)
	}

	srv := webform.New(desc, webform.WithLogger(log))

	log.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
