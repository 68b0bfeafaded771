package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/loader"
	"warehouse-counter/core/logger"
	"warehouse-counter/core/middleware/auth"
	"warehouse-counter/core/middleware/rayid"
	"warehouse-counter/core/storage"
	"warehouse-counter/feature/audit"
	"warehouse-counter/feature/inventory"
	"warehouse-counter/feature/station"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "warehouse-counter/docs/swagger"
)

// @title Warehouse Counter API
// @version 1.0
// @description API for counting warehouse inventory with barcode scanners.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the warehouse counter server",
	Long:  `Starts the HTTP server, keeps the catalog in sync with the database and accepts scanner stations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.logger
		cfg := rt.cfg
		zap.ReplaceGlobals(logg)

		if err := storage.EnsureBucket(ctx, rt.client, cfg.Storage.Bucket); err != nil {
			logg.Warn("Storage bucket unavailable, exports and bucket restocks will fail", zap.Error(err))
		}

		// Keep the catalog current with writes from other processes.
		go func() {
			if err := catalog.Follow(ctx, rt.store, rt.catalog, logg); err != nil && !errors.Is(err, context.Canceled) {
				logg.Error("Catalog subscription stopped", zap.Error(err))
			}
		}()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		inv := inventory.NewFeature(rt.catalog, rt.store, rt.client, cfg.Storage, cfg.Restock, logg)
		exporter := inventory.NewExporter(rt.client, cfg.Storage, logg)

		mgr := loader.NewManager(logg)
		mgr.Register(inv)
		mgr.Register(audit.NewFeature(rt.catalog, rt.db, exporter, logg))
		mgr.Register(station.NewFeature(rt.catalog, rt.store, cfg.Scanner, cfg.Server.Stations, logg))

		// RayID first so every log line of a request carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
