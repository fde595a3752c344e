package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/cardsharp/pokerduel/internal/config"
	"github.com/cardsharp/pokerduel/internal/server"
)

// ServeCmd runs the websocket evaluation service.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

func (cmd *ServeCmd) Run(g *Globals) error {
	logger := newLogger(g.Debug)

	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.Server.Addr()
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	srv := server.NewServer(addr, logger, quartz.NewReal())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Info("Shutting down")
		_ = srv.Stop()
		os.Exit(0)
	}()

	return srv.Start()
}
