package medley

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Nydauron/moisty/cache"
	"github.com/Nydauron/moisty/meetsetup"
	"github.com/Nydauron/moisty/writers"
)

// Reporter follows the progress of a download run. Methods are called from
// several goroutines.
type Reporter interface {
	Start(total int)
	Skipped(info meetsetup.MeetInfo)
	Downloaded(info meetsetup.MeetInfo, size int)
	Failed(info meetsetup.MeetInfo, err error)
	Finish()
}

// LogReporter reports progress through a logger.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Start(total int) {
	r.Logger.Info("downloading meets", "meets", total)
}

func (r LogReporter) Skipped(info meetsetup.MeetInfo) {
	r.Logger.Debug("skipping meet already in cache", "meet", info.Name)
}

func (r LogReporter) Downloaded(info meetsetup.MeetInfo, size int) {
	r.Logger.Info("downloaded meet", "meet", info.Name, "bytes", size)
}

func (r LogReporter) Failed(info meetsetup.MeetInfo, err error) {
	r.Logger.Error("downloading meet failed", "meet", info.Name, "error", err)
}

func (r LogReporter) Finish() {}

type Summary struct {
	Downloaded int
	Skipped    int
	Failed     int
}

type Downloader struct {
	Client   *Client
	Dirs     cache.Dirs
	Index    *cache.Index
	Policy   meetsetup.FilenamePolicy
	Workers  int
	Reporter Reporter
}

// Download stores the meetsetup.xml of every meet in the cache. Meets already
// downloaded are skipped. A failing meet is reported and does not stop the
// others; the returned error is only set when ctx is done.
func (d *Downloader) Download(ctx context.Context, infos []meetsetup.MeetInfo) (Summary, error) {
	if err := d.Dirs.Ensure(); err != nil {
		return Summary{}, err
	}

	var (
		mu      sync.Mutex
		summary Summary
	)
	count := func(field *int) {
		mu.Lock()
		*field++
		mu.Unlock()
	}

	d.Reporter.Start(len(infos))
	defer d.Reporter.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.Workers, 1))
	for _, info := range infos {
		if gctx.Err() != nil {
			break
		}
		info := info
		g.Go(func() error {
			skipped, size, err := d.download(gctx, info)
			switch {
			case err != nil:
				count(&summary.Failed)
				d.Reporter.Failed(info, err)
			case skipped:
				count(&summary.Skipped)
				d.Reporter.Skipped(info)
			default:
				count(&summary.Downloaded)
				d.Reporter.Downloaded(info, size)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, ctx.Err()
}

func (d *Downloader) download(ctx context.Context, info meetsetup.MeetInfo) (bool, int, error) {
	filename := info.Filename(d.Policy)
	cached, err := d.cached(ctx, filename)
	if err != nil {
		return false, 0, err
	}
	if cached {
		return true, 0, nil
	}

	content, err := d.Client.get(ctx, info.MeetSetup.String())
	if err != nil {
		return false, 0, err
	}

	path := d.Dirs.Download(filename)
	w := writers.NewAtomicFile(path)
	if _, err := w.Write(content); err != nil {
		w.Abort()
		return false, 0, fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return false, 0, fmt.Errorf("writing %s: %w", filename, err)
	}

	if d.Index != nil {
		if err := d.Index.Upsert(ctx, indexEntry(info, filename, d.Policy)); err != nil {
			// without an index entry the next run has to fetch it again
			os.Remove(path)
			return false, 0, err
		}
	}
	return false, len(content), nil
}

// cached reports whether filename is downloaded and, with an index, indexed.
func (d *Downloader) cached(ctx context.Context, filename string) (bool, error) {
	exists, err := d.Dirs.Exists(filename)
	if err != nil || !exists {
		return false, err
	}
	if d.Index == nil {
		return true, nil
	}
	_, err = d.Index.Get(ctx, filename)
	if errors.Is(err, cache.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func indexEntry(info meetsetup.MeetInfo, filename string, policy meetsetup.FilenamePolicy) cache.Entry {
	e := cache.Entry{
		Filename:  filename,
		Name:      info.Name,
		StartDate: info.StartDate.Format("2006-01-02"),
		EndDate:   info.EndDate.Format("2006-01-02"),
		Host:      info.Host,
		SourceURL: info.MeetSetup.String(),
		Policy:    policy.String(),
	}
	if info.ID != 0 {
		id := info.ID
		e.NsfID = &id
	}
	return e
}
