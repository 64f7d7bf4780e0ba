package attendance

import (
	"attendance-backend/lib/timezone"
	"attendance-backend/services/attendance/db"
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var csvHeader = []string{"roll_num", "name", "department", "time"}

// rows come back in storage order, there is no ORDER BY
func listRows(ctx context.Context, qry *db.Queries, table Table) ([]db.In, error) {
	switch table {
	case TableIn:
		return qry.ListIn(ctx)
	case TableOut:
		rows, err := qry.ListOut(ctx)
		if err != nil {
			return nil, err
		}
		converted := make([]db.In, len(rows))
		for i, r := range rows {
			converted[i] = db.In(r)
		}
		return converted, nil
	}
	return nil, fmt.Errorf("unknown table %q", table)
}

// ExportCSV renders every row of the table as CSV, header first.
func ExportCSV(ctx context.Context, database *sql.DB, table Table) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "ExportCSV")
	defer span.End()

	span.SetAttributes(attribute.String("table", string(table)))

	rows, err := listRows(ctx, db.New(database), table)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	err = writer.Write(csvHeader)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		err = writer.Write([]string{r.RollNum, r.Name, r.Department, r.Time})
		if err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// List returns the stored records of a table with their timestamps
// read back on the campus clock.
func List(ctx context.Context, database *sql.DB, table Table) ([]Record, error) {
	rows, err := listRows(ctx, db.New(database), table)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(rows))
	for i, r := range rows {
		stamp, err := time.ParseInLocation(db.TimeLayout, r.Time, timezone.Location)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", r.RollNum, err)
		}
		records[i] = Record{
			RollNum:    r.RollNum,
			Name:       r.Name,
			Department: r.Department,
			Time:       stamp,
		}
	}
	return records, nil
}
