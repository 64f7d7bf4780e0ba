package attendance

import (
	"attendance-backend/lib/scrapers/profile"
	"attendance-backend/lib/timezone"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultAllowedHost = "www.rajalakshmi.org"

var ErrInvalidURL = errors.New("invalid url")

// Scraper turns a profile page link into the student's details.
type Scraper interface {
	Fetch(ctx context.Context, link string) (profile.Profile, error)
}

type Service struct {
	db          *sql.DB
	scraper     Scraper
	in          Writer
	allowedHost string
}

func NewService(database *sql.DB, scraper Scraper, allowedHost string) Service {
	if allowedHost == "" {
		allowedHost = DefaultAllowedHost
	}
	return Service{
		db:          database,
		scraper:     scraper,
		in:          NewWriter(database, TableIn),
		allowedHost: strings.ToLower(allowedHost),
	}
}

// ValidateURL accepts only absolute http(s) links whose host is exactly
// the allowed host, it returns the normalized link.
func (s Service) ValidateURL(raw string) (string, error) {
	link, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if link.Scheme != "http" && link.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if link.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	if strings.ToLower(link.Hostname()) != s.allowedHost {
		return "", fmt.Errorf("%w: only %s urls are accepted", ErrInvalidURL, s.allowedHost)
	}
	link.Host = strings.ToLower(link.Host)
	return link.String(), nil
}

type IngestResult struct {
	URL      string
	Record   Record
	Inserted bool
}

// Ingest validates the link, scrapes the profile behind it and records
// an "in" entry for the student. a roll number that was already
// recorded is not an error, Inserted reports it.
func (s Service) Ingest(ctx context.Context, raw string) (IngestResult, error) {
	ctx, span := tracer.Start(ctx, "Ingest")
	defer span.End()

	link, err := s.ValidateURL(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return IngestResult{}, err
	}
	span.SetAttributes(attribute.String("url", link))

	details, err := s.scraper.Fetch(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return IngestResult{}, err
	}

	record, err := NewRecord(details.RegNum, details.Name, details.Department, timezone.Now())
	if err != nil {
		// the page was reachable but did not carry usable details
		err = fmt.Errorf("%w: %w", profile.ErrExtractionFailed, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return IngestResult{}, err
	}

	inserted, err := s.in.Write(ctx, record)
	if err != nil {
		return IngestResult{}, err
	}
	if !inserted {
		slog.InfoContext(ctx, "roll number already recorded", "roll_num", record.RollNum, "table", s.in.Table())
	}

	return IngestResult{URL: link, Record: record, Inserted: inserted}, nil
}

func (s Service) Export(ctx context.Context, table Table) ([]byte, error) {
	return ExportCSV(ctx, s.db, table)
}
