package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaminalder/tictactoe-ai/internal/app"
	"github.com/jaminalder/tictactoe-ai/internal/config"
	"github.com/jaminalder/tictactoe-ai/internal/domain"
	"github.com/jaminalder/tictactoe-ai/internal/web"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/tictactoe.yaml", "the config file")

func main() {
	flag.Parse()

	c, err := config.Load(*configFile)
	logx.Must(err)
	logx.MustSetup(c.Log)
	defer logx.Close()

	mode, err := app.ParseMode(c.Game.DefaultMode)
	logx.Must(err)
	computer, err := domain.ParseCell(c.Game.ComputerSymbol)
	logx.Must(err)

	svc := app.NewService(app.Options{
		Mode:          mode,
		Computer:      computer,
		ComputerDelay: c.Game.ComputerDelay(),
		ResetDelay:    c.Game.RoundResetDelay(),
	})
	server := &http.Server{
		Addr:              c.ListenOn,
		Handler:           web.NewServer(svc, web.Options{Heartbeat: c.EventHeartbeat(), Profiling: c.Profiling}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	logx.Infow("listening", logx.Field("addr", c.ListenOn), logx.Field("mode", string(mode)),
		logx.Field("computer", computer.String()))

	var runErr error
	select {
	case <-sigCtx.Done():
		logx.Info("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logx.Errorf("graceful shutdown failed: %v", err)
		_ = server.Close()
	}
	if runErr != nil {
		logx.Errorf("server stopped: %v", runErr)
		logx.Close()
		os.Exit(1)
	}
}
