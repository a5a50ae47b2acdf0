package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/coastfire-calculator/internal/api"
	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/storage"
	"github.com/rpgo/coastfire-calculator/internal/storage/memory"
	redisstore "github.com/rpgo/coastfire-calculator/internal/storage/redis"
	"github.com/rpgo/coastfire-calculator/internal/storage/sqlite"
)

type serveOptions struct {
	port      int
	dbPath    string
	redisAddr string
	origins   []string
}

// openStore picks the storage backend: Redis when an address is given, then
// SQLite, then an in-memory map when dbPath is empty.
func (o serveOptions) openStore(ctx context.Context) (storage.InputStore, string, error) {
	switch {
	case o.redisAddr != "":
		s, err := redisstore.New(ctx, o.redisAddr)
		return s, "redis " + o.redisAddr, err
	case o.dbPath != "":
		s, err := sqlite.New(o.dbPath)
		return s, "sqlite " + o.dbPath, err
	default:
		return memory.New(), "memory", nil
	}
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator HTTP API",
		Example: `  coastfire serve --port 8080 --db coastfire.db
  coastfire serve --db :memory:
  coastfire serve --redis localhost:6379`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger(cmd)

			store, backend, err := opts.openStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer store.Close()

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger)
			router := api.NewRouter(api.NewHandler(store, engine), opts.origins...)

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", opts.port),
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof("server starting on http://localhost:%d (storage: %s)", opts.port, backend)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err, ok := <-errCh:
				if ok {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-quit:
			}

			logger.Infof("shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			logger.Infof("server stopped")
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.port, "port", "p", 8080, "HTTP server port")
	cmd.Flags().StringVar(&opts.dbPath, "db", "coastfire.db", `SQLite database path (":memory:" for in-memory, empty for no database)`)
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address; takes precedence over --db")
	cmd.Flags().StringSliceVar(&opts.origins, "cors-origin", nil, "allowed CORS origins (default any)")
	return cmd
}
