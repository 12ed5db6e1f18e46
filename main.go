package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/Nydauron/moisty/cache"
	"github.com/Nydauron/moisty/config"
	"github.com/Nydauron/moisty/loader"
	"github.com/Nydauron/moisty/medley"
	"github.com/Nydauron/moisty/meetsetup"
	"github.com/Nydauron/moisty/prompts"
	"github.com/Nydauron/moisty/report"
	"github.com/Nydauron/moisty/ui"
	"github.com/Nydauron/moisty/unip"
	"github.com/Nydauron/moisty/writers"
)

const (
	downloadFlag      = "download"
	infoFlag          = "info"
	clearCacheFlag    = "clear-cache"
	listFlag          = "list"
	dateFlag          = "date"
	referenceYearFlag = "reference-year"
	outputFlag        = "output"
	workersFlag       = "workers"
	yesFlag           = "yes"
	noProgressFlag    = "no-progress"
	unipFlag          = "unip"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

type options struct {
	download      bool
	info          bool
	clearCache    bool
	list          bool
	date          string
	referenceYear int
	output        string
	workers       int
	yes           bool
	noProgress    bool
	unip          string
	paths         []string
}

func cliHandle(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts options) error {
	if opts.unip != "" {
		output := opts.output
		if output == "" {
			output = "-"
		}
		return writeEnrollment(opts.unip, writers.Output(output, os.Stdout))
	}

	dirs := cache.Dirs{Root: cfg.CacheDir}
	decodeOpts := meetsetup.Options{ReferenceYear: meetsetup.Year(opts.referenceYear)}

	if opts.clearCache {
		if !opts.yes && !prompts.Confirm(fmt.Sprintf("Remove every meet cached in %s?", cfg.CacheDir)) {
			return errors.New("clearing cache aborted")
		}
		if err := dirs.Clear(); err != nil {
			return err
		}
	}
	if err := dirs.Ensure(); err != nil {
		return err
	}

	index, err := cache.Open(dirs.IndexPath(), logger)
	if err != nil {
		return err
	}
	defer index.Close()

	if opts.clearCache {
		if err := index.Clear(ctx); err != nil {
			return err
		}
		logger.Info("cleared cache", "dir", cfg.CacheDir)
	}

	if opts.download {
		if err := download(ctx, cfg, logger, dirs, index, opts); err != nil {
			return err
		}
	}

	paths := opts.paths
	fromCache := len(paths) == 0
	if fromCache {
		paths, err = loader.ListDir(dirs.Downloads())
		if err != nil {
			return err
		}
	}

	results, err := loader.Load(ctx, paths, decodeOpts, opts.workers, logger)
	if err != nil {
		return err
	}
	if fromCache {
		recordParsed(ctx, logger, index, results)
	}

	meets, failed := loader.Partition(results)
	logger.Info(fmt.Sprintf("parsed %d out of %d meets", len(meets), len(results)))
	for _, fail := range failed {
		logger.Error(fail.Err.Error())
	}

	reports := make([]report.Report, 0, len(meets))
	for _, r := range meets {
		rep, err := report.GenerateReport(r.Meet, meetsetup.DefaultFilenamePolicy)
		if err != nil {
			logger.Error(fmt.Sprintf("%s: %v", r.Path, err))
			continue
		}
		reports = append(reports, rep)
		if fromCache {
			if err := writeParsedReport(dirs, r.Path, rep); err != nil {
				logger.Warn("storing report", "path", r.Path, "error", err)
			}
		}
		if opts.list {
			printMeetLine(os.Stdout, r.Meet)
		}
		if opts.info {
			if err := printEventTable(os.Stdout, rep); err != nil {
				return err
			}
		}
	}

	if opts.output != "" {
		out := writers.Output(opts.output, os.Stdout)
		if err := report.Encode(out, reports...); err != nil {
			out.Close()
			return fmt.Errorf("encoding to YAML failed: %w", err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", opts.output, err)
		}
	}
	return nil
}

func download(ctx context.Context, cfg *config.Config, logger *slog.Logger, dirs cache.Dirs, index *cache.Index, opts options) error {
	from := time.Now()
	if opts.date != "" {
		var err error
		from, err = time.Parse(time.DateOnly, opts.date)
		if err != nil {
			return fmt.Errorf("--%s needs the format YYYY-MM-DD: %w", dateFlag, err)
		}
	}

	client := medley.NewClient(cfg.MeetListURL, cfg.HTTPTimeout, logger)
	infos, err := client.FetchMeetList(ctx, from)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var reporter medley.Reporter = medley.LogReporter{Logger: logger}
	if !opts.noProgress {
		reporter = ui.NewDownloadProgress(os.Stderr, cancel, logger)
	}

	d := &medley.Downloader{
		Client:   client,
		Dirs:     dirs,
		Index:    index,
		Policy:   meetsetup.DefaultFilenamePolicy,
		Workers:  opts.workers,
		Reporter: reporter,
	}
	summary, err := d.Download(ctx, infos)
	logger.Info("downloaded meets",
		"downloaded", summary.Downloaded,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return err
}

// recordParsed stores decode outcomes of cached files in the index. Files
// copied into the cache by hand have no index entry and are skipped.
func recordParsed(ctx context.Context, logger *slog.Logger, index *cache.Index, results []loader.Result) {
	for _, r := range results {
		err := index.MarkParsed(ctx, filepath.Base(r.Path), r.Err)
		if err != nil && !errors.Is(err, cache.ErrNotFound) {
			logger.Warn("recording parse result", "path", r.Path, "error", err)
		}
	}
}

// writeParsedReport keeps the report of a cached meet in the parsed directory.
func writeParsedReport(dirs cache.Dirs, path string, rep report.Report) error {
	out := writers.NewAtomicFile(dirs.Report(filepath.Base(path)))
	if err := report.Encode(out, rep); err != nil {
		return errors.Join(err, out.Abort())
	}
	return out.Close()
}

// writeEnrollment decodes the club entry file at path and writes it to out
// as YAML.
func writeEnrollment(path string, out io.WriteCloser) error {
	enrollment, err := unip.ReadFile(path)
	if err != nil {
		out.Close()
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := report.EncodeEnrollment(out, report.GenerateEnrollment(enrollment)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printMeetLine(w io.Writer, meet *meetsetup.Meet) {
	var id uint32
	if meet.NsfMeetID != nil {
		id = *meet.NsfMeetID
	}
	if meet.StartDate != nil && meet.EndDate != nil {
		fmt.Fprintf(w, "[%010d] [%s %s] %s\n", id,
			meet.StartDate.Format(time.DateOnly), meet.EndDate.Format(time.DateOnly), meet.Name)
		return
	}
	fmt.Fprintf(w, "[%010d] %s, %s\n", id, meet.Date, meet.Name)
}

func printEventTable(w io.Writer, r report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%d sessions\t%s\t%s\n", r.Meet.Name, r.Meet.Dates, len(r.Sessions), r.Meet.Location, r.Meet.NsfID)
	fmt.Fprintln(tw, "Event\tName\tGender\tDate\tSorting")
	for _, e := range r.Events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.Number, e.Name, e.Gender, e.Date, e.Sorting)
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var opts options
	app := &cli.App{
		Name:      "moisty",
		Usage:     "Download, decode and list swim meet setups from medley.no",
		Version:   semanticVersion,
		ArgsUsage: "[meetsetup.xml ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        downloadFlag,
				Aliases:     []string{"d"},
				Usage:       "Download new meets from medley.no into the cache",
				Destination: &opts.download,
			},
			&cli.BoolFlag{
				Name:        infoFlag,
				Aliases:     []string{"i"},
				Usage:       "Print a table of the events of each meet",
				Destination: &opts.info,
			},
			&cli.BoolFlag{
				Name:        clearCacheFlag,
				Aliases:     []string{"c"},
				Usage:       "Remove every cached meet before doing anything else",
				Destination: &opts.clearCache,
			},
			&cli.BoolFlag{
				Name:        listFlag,
				Aliases:     []string{"l"},
				Usage:       "List the meets that decoded",
				Destination: &opts.list,
			},
			&cli.StringFlag{
				Name:        dateFlag,
				Usage:       "Download meets starting at or after this date (YYYY-MM-DD). Defaults to today.",
				Destination: &opts.date,
			},
			&cli.IntFlag{
				Name:        referenceYearFlag,
				Usage:       "Year birth years of classes are checked against",
				Value:       time.Now().Year(),
				Destination: &opts.referenceYear,
			},
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "Write the decoded meets as YAML. Can be a file path or \"-\" (for stdout).",
				Destination: &opts.output,
			},
			&cli.IntFlag{
				Name:        workersFlag,
				Usage:       "Number of meets downloaded or decoded at once",
				Value:       cfg.Workers,
				Destination: &opts.workers,
			},
			&cli.BoolFlag{
				Name:        yesFlag,
				Usage:       "Do not ask before clearing the cache",
				Destination: &opts.yes,
			},
			&cli.BoolFlag{
				Name:        noProgressFlag,
				Usage:       "Log download progress instead of showing a progress bar",
				Destination: &opts.noProgress,
			},
			&cli.StringFlag{
				Name:        unipFlag,
				Usage:       "Decode a uni_p.txt club entry file and write it as YAML to --output (stdout by default)",
				Destination: &opts.unip,
			},
		},
		Commands: []*cli.Command{
			serveCommand(cfg, logger),
		},
		Action: func(cCtx *cli.Context) error {
			opts.paths = cCtx.Args().Slice()
			return cliHandle(cCtx.Context, cfg, logger, opts)
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
