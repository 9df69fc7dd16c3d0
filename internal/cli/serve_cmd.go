package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/kesteai/internal/app"
	"github.com/alexanderramin/kesteai/internal/telegram"
	"github.com/alexanderramin/kesteai/internal/transport/rest"
)

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the change feed and the Telegram channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := newHTTPServer(a.Runtime)
			if addr != "" {
				srv.Addr = addr
			}
			return serve(ctx, a.Runtime, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.host/port)")

	return cmd
}

func newHTTPServer(rt *app.Runtime) *http.Server {
	cfg := rt.Config.Server
	return &http.Server{
		Addr: cfg.Addr(),
		Handler: rest.NewRouter(rest.Deps{
			Store: rt.Store,
			Bot:   rt.Bot,
			Hub:   rt.Hub,
			IDs:   rt.IDs,
			Log:   rt.Log,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// serve runs until ctx is cancelled or a component fails, then shuts the
// HTTP server down within the configured timeout.
func serve(ctx context.Context, rt *app.Runtime, srv *http.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rt.Log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if token := rt.Config.Telegram.Token; token != "" {
		h := telegram.NewHandler(rt.Bot, rt.Config.Telegram.AllowedChatID, rt.Log)
		g.Go(func() error { return telegram.Run(ctx, token, h) })
	}

	g.Go(func() error {
		<-ctx.Done()
		rt.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.Config.Server.ShutdownTimeout)
		defer cancel()
		rt.Hub.Close()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
