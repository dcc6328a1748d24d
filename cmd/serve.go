package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/server"
	"github.com/ziadkadry99/catalogview/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog viewer in the browser",
	Long:  `Starts an HTTP server hosting the catalog page with live search, category filters and the theme toggle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		intro, err := web.RenderIntro(cfg.Intro)
		if err != nil {
			return fmt.Errorf("rendering intro: %w", err)
		}

		database, store, err := openPrefs(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		holder := app.NewCatalogHolder()
		ld := newLoader(cfg)
		holder.Start(ctx, ld.LoadCatalog)
		go func() {
			items, err := holder.Wait(ctx)
			if err != nil {
				log.Printf("catalog: load failed: %v", err)
				return
			}
			log.Printf("catalog: loaded %d items", len(items))
		}()

		srv := server.New(server.Config{Port: cfg.Port, AllowAll: cfg.AllowAllOrigins})
		web.New(holder, store, web.Options{Title: cfg.Title, IntroHTML: intro}).RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "catalogview v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Movies: %s\n", cfg.MoviesSource)
		fmt.Fprintf(os.Stderr, "  Series: %s\n", cfg.SeriesSource)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
