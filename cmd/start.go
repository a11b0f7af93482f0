package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deck-finder/core/artifact"
	"deck-finder/core/loader"
	"deck-finder/core/logger"
	"deck-finder/core/match"
	"deck-finder/core/metrics"
	"deck-finder/core/middleware/rayid"
	"deck-finder/feature/catalog"
	"deck-finder/feature/integrity"
	"deck-finder/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "deck-finder/docs/swagger"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the deck search server",
	Long:  `Loads the merged catalog artifacts and starts the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration and logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Catalog repository
		repo, err := artifact.New(cfg.Catalog, cfg.Storage)
		if err != nil {
			return err
		}

		registry := metrics.NewRegistry()
		holder := &match.Holder{}

		// 3. Features
		catalogFeature := catalog.NewFeature(holder, repo, registry, logg, cfg.Server.ApiKey)
		searchFeature := search.NewFeature(match.NewEngine(holder), registry, logg)

		if cfg.Catalog.ReloadOnStart {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if _, err := catalogFeature.Service().Reload(ctx); err != nil {
				logg.Warn("Catalog not loaded, searches fail until a reload succeeds", zap.Error(err))
			}
			cancel()
		}

		mgr := loader.NewManager()
		mgr.Register(searchFeature)
		mgr.Register(catalogFeature)
		mgr.Register(integrity.NewFeature(repo, logg, cfg.Server.ApiKey))

		// 4. Fiber app
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.EffectiveBodyLimit(),
		})

		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request handled", fields...)
			return nil
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(registry.Handler()))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 5. Serve
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		// 6. Graceful shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-sig:
		}
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
