package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

var MANAGER *TransitManager

func main() {
	LoadEnv()

	config_file := flag.String("config", GetEnvOr("TRANSIT_CONFIG", "./config.yaml"), "path to the config file")
	mode := flag.String("mode", "serve", "serve | process | text")
	flag.Parse()

	switch *mode {
	case "process":
		SetupLogging(os.Stderr, WARN)
		if err := ProcessDocument(os.Stdin, os.Stdout, DefaultConfig().RoutingSettings); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	case "text":
		SetupLogging(os.Stderr, WARN)
		if err := ProcessTextInput(os.Stdin, os.Stdout); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	case "serve":
		SetupLogging(os.Stdout, INFO)
		config, err := ReadConfig(*config_file)
		if err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
		SetupLogging(os.Stdout, config.LogLevel)
		MANAGER, err = NewTransitManager(config)
		if err != nil {
			slog.Error("failed to load network: " + err.Error())
			os.Exit(1)
		}

		app := NewAPIRouter(config.Server.AllowedOrigins)
		addr := fmt.Sprintf(":%v", config.Server.Port)
		slog.Info("server starting on " + addr)
		if err := http.ListenAndServe(addr, app); err != nil {
			slog.Error("server failed: " + err.Error())
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}
