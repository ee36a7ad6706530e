// Command huffd serves huffman compression over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/axiomhq/huffman/internal/config"
	"github.com/axiomhq/huffman/internal/logsetup"
	"github.com/axiomhq/huffman/internal/server"
)

const progName = "huffd"

var log = logging.MustGetLogger("huffman/huffd")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is canceled, then shuts down gracefully.
func run(ctx context.Context, args []string, getenv func(string) string) error {
	cfg, err := config.Load(args, getenv)
	if err != nil {
		return err
	}
	if _, err := logsetup.Setup(os.Stderr, progName, cfg.LogLevel); err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)

	srv, err := server.New(server.Options{MaxInputBytes: cfg.MaxInputBytes})
	if err != nil {
		return err
	}
	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Noticef("listening on %s (max input %d bytes)", cfg.Addr, cfg.MaxInputBytes)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Notice("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	st := srv.Stats()
	log.Infof("served %d compress, %d decompress, %d failed", st.Compressed, st.Decompressed, st.Failures)
	return nil
}
