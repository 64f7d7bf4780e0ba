// Package profile scrapes the student profile page that a campus ID
// card QR code links to.
package profile

import (
	"attendance-backend/lib/htmlutil"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/profile")

var ErrExtractionFailed = errors.New("profile extraction failed")

type Profile struct {
	Name       string
	RegNum     string
	Department string
}

// the page is a fixed layout: body > div > table > ... > table whose
// 3rd, 4th and 5th rows hold the name (in <b>), "Reg No: <num>" and
// the department. the html parser adds the implicit <tbody>.
const rowsSelector = "html > body > div > table > tbody > tr > td > table > tbody"

var (
	nameSelector       = rowsSelector + " > tr:nth-of-type(3) > td > b"
	regNumSelector     = rowsSelector + " > tr:nth-of-type(4) > td"
	departmentSelector = rowsSelector + " > tr:nth-of-type(5) > td"
)

const regNumLabel = "Reg No:"

// Parse extracts a profile from the page markup. values are only
// trimmed at the edges, inner spacing is kept. every field is
// required, a layout change yields ErrExtractionFailed along with
// whatever could be extracted.
func Parse(ctx context.Context, body io.Reader) (Profile, error) {
	ctx, span := tracer.Start(ctx, "Parse")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return Profile{}, err
	}

	profile := Profile{
		Name:       htmlutil.FirstText(doc.Find(nameSelector)),
		RegNum:     strings.TrimSpace(strings.ReplaceAll(htmlutil.FirstText(doc.Find(regNumSelector)), regNumLabel, "")),
		Department: htmlutil.FirstText(doc.Find(departmentSelector)),
	}
	span.SetAttributes(
		attribute.String("name", profile.Name),
		attribute.String("reg_num", profile.RegNum),
		attribute.String("department", profile.Department),
	)

	var missing []string
	if profile.Name == "" {
		missing = append(missing, "name")
	}
	if profile.RegNum == "" {
		missing = append(missing, "reg_num")
	}
	if profile.Department == "" {
		missing = append(missing, "department")
	}
	if len(missing) > 0 {
		err := fmt.Errorf("%w: missing %s", ErrExtractionFailed, strings.Join(missing, ", "))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return profile, err
	}

	return profile, nil
}
