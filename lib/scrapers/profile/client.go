package profile

import (
	"attendance-backend/lib/restyutil"
	"bytes"
	"context"
	"fmt"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Options struct {
	// defaults to 30 seconds
	Timeout   time.Duration
	UserAgent string
	// wraps the transport so the request looks like it came from a browser
	CloudflareBypass bool
	// receives every fetched page, may be nil
	Output restyutil.InstrumentOutput
}

type Client struct {
	http *resty.Client
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	client := resty.New()
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	restyutil.InstrumentClient(client, tracer, opts.Output)

	return &Client{http: client}
}

// Fetch downloads the page at link and parses it, see Parse.
func (c *Client) Fetch(ctx context.Context, link string) (Profile, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	if res.IsError() {
		err := fmt.Errorf("fetch profile: unexpected status %s", res.Status())
		span.SetStatus(codes.Error, err.Error())
		return Profile{}, err
	}

	return Parse(ctx, bytes.NewReader(res.Body()))
}
