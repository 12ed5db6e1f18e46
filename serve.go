package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Nydauron/moisty/cache"
	"github.com/Nydauron/moisty/config"
	"github.com/Nydauron/moisty/meetsetup"
	"github.com/Nydauron/moisty/server"
)

const addrFlag = "addr"

func serveCommand(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the cached meets over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  addrFlag,
				Usage: "Address to listen on",
				Value: cfg.HTTPAddr,
			},
			&cli.IntFlag{
				Name:  referenceYearFlag,
				Usage: "Year birth years of classes are checked against",
				Value: time.Now().Year(),
			},
		},
		Action: func(cCtx *cli.Context) error {
			return serve(cCtx.Context, cfg, logger, cCtx.String(addrFlag), cCtx.Int(referenceYearFlag))
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, addr string, referenceYear int) error {
	dirs := cache.Dirs{Root: cfg.CacheDir}
	if err := dirs.Ensure(); err != nil {
		return err
	}
	index, err := cache.Open(dirs.IndexPath(), logger)
	if err != nil {
		return err
	}
	defer index.Close()
	logger.Info("opened cache index", "path", dirs.IndexPath())

	srv := server.New(server.Config{
		Addr:   addr,
		Dirs:   dirs,
		Index:  index,
		Opts:   meetsetup.Options{ReferenceYear: meetsetup.Year(referenceYear)},
		Policy: meetsetup.DefaultFilenamePolicy,
	}, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", addr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
