package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bhudelson/portfolio/internal/content"
	"github.com/bhudelson/portfolio/internal/linktext"
	"github.com/bhudelson/portfolio/internal/site"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cfg := loadConfig()

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio and résumé site",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := parseLevel(cfg.LogLevel)
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd(&cfg))
	root.AddCommand(newLinksCmd())
	root.AddCommand(newRenderCmd())
	return root
}

func newServeCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	cmd.Flags().StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "sqlite database for visitor metrics")
	cmd.Flags().StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "directory holding images/ and static/")
	cmd.Flags().StringVar(&cfg.SiteConfig, "site", cfg.SiteConfig, "site.toml to use instead of the bundled one")
	return cmd
}

func serve(ctx context.Context, cfg Config) error {
	logger := loggerFromContext(ctx)

	s, err := site.Load(cfg.SiteConfig, cfg.PhilosophyPath)
	if err != nil {
		return err
	}
	c, err := content.LoadContent(content.Bundled())
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	store, err := openVisitorStore(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	go cleanupLoop(ctx, store, logger)

	router, err := newRouter(&server{cfg: cfg, site: s, content: c, store: store, logger: logger})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// cleanupLoop enforces visitor retention at startup and once a day.
func cleanupLoop(ctx context.Context, store *VisitorStore, logger *charmlog.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		if _, err := store.Cleanup(ctx); err != nil && ctx.Err() == nil {
			logger.Error("Error cleaning up old visitor data", "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List every annotated link in the bundled media blurbs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.LoadContent(content.Bundled())
			if err != nil {
				return fmt.Errorf("load content: %w", err)
			}
			links := c.Links()
			loggerFromContext(cmd.Context()).Debug("Collected links", "count", len(links))

			w := cmd.OutOrStdout()
			for _, l := range links {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Shelf, l.ItemID, l.Label, l.URL)
			}
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [text]",
		Short: "Split text into plain and link segments (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimSuffix(string(data), "\n")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(linktext.Render(text))
		},
	}
}
