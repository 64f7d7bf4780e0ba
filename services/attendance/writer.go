package attendance

import (
	"attendance-backend/lib/timezone"
	"attendance-backend/services/attendance/db"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("services/attendance")

var ErrStorage = errors.New("storage error")

// Writer inserts records into one table, ignoring records whose
// roll number is already present.
type Writer struct {
	db    *sql.DB
	qry   *db.Queries
	table Table
}

func NewWriter(database *sql.DB, table Table) Writer {
	return Writer{
		db:    database,
		qry:   db.New(database),
		table: table,
	}
}

func (w Writer) Table() Table {
	return w.table
}

func storageError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// Write stores the record in its own transaction. inserted is false when
// a record with the same roll number already exists, that row is left
// untouched. any failure rolls the transaction back.
func (w Writer) Write(ctx context.Context, record Record) (inserted bool, err error) {
	ctx, span := tracer.Start(ctx, "Writer:Write")
	defer span.End()

	span.SetAttributes(
		attribute.String("table", string(w.table)),
		attribute.String("roll_num", record.RollNum),
	)

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storageError(span, err)
	}
	defer tx.Rollback()
	txqry := w.qry.WithTx(tx)

	stamp := record.Time.In(timezone.Location).Format(db.TimeLayout)

	var affected int64
	switch w.table {
	case TableIn:
		affected, err = txqry.InsertIn(ctx, db.InsertInParams{
			RollNum:    record.RollNum,
			Name:       record.Name,
			Department: record.Department,
			Time:       stamp,
		})
	case TableOut:
		affected, err = txqry.InsertOut(ctx, db.InsertOutParams{
			RollNum:    record.RollNum,
			Name:       record.Name,
			Department: record.Department,
			Time:       stamp,
		})
	default:
		err = fmt.Errorf("unknown table %q", w.table)
	}
	if err != nil {
		return false, storageError(span, err)
	}

	err = tx.Commit()
	if err != nil {
		return false, storageError(span, err)
	}

	span.SetAttributes(attribute.Bool("inserted", affected > 0))
	return affected > 0, nil
}
