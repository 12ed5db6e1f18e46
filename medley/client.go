// Package medley fetches the list of upcoming meets published on medley.no
// and downloads their meetsetup.xml files into the local cache.
package medley

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Nydauron/moisty/meetsetup"
	"github.com/Nydauron/moisty/parsers"
)

const DefaultMeetListURL = "http://medley.no/tidsjekk/stevneoppsett.asmx/VisStevneoppsett"

// maxDocumentSize bounds a single meet list or meetsetup.xml response.
const maxDocumentSize = 16 << 20

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: timeout,
		},
		Logger: logger,
	}
}

// MeetListURL is the meet list endpoint listing meets from the given date.
func (c *Client) MeetListURL(from time.Time) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing meet list url: %w", err)
	}
	q := u.Query()
	q.Set("FraNr", "1")
	q.Set("FraDato", from.Format("20060102"))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchMeetList returns every meet starting at or after from.
func (c *Client) FetchMeetList(ctx context.Context, from time.Time) ([]meetsetup.MeetInfo, error) {
	listURL, err := c.MeetListURL(from)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("fetching meet list", "url", listURL)

	content, err := c.get(ctx, listURL)
	if err != nil {
		return nil, fmt.Errorf("fetching meet list: %w", err)
	}
	root, err := parsers.ParseXML(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing meet list: %w", err)
	}
	infos, err := meetsetup.DecodeMeetList(root)
	if err != nil {
		return nil, fmt.Errorf("decoding meet list: %w", err)
	}
	c.Logger.Info("fetched meet list", "meets", len(infos))
	return infos, nil
}

// get returns the body of rawURL converted to UTF-8.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", rawURL, resp.StatusCode)
	}
	content, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return ToUTF8(content)
}
