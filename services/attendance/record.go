package attendance

import (
	"attendance-backend/lib/timezone"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var ErrInvalidRecord = errors.New("invalid attendance record")

// Table names one of the two attendance tables, they share a schema.
type Table string

const (
	TableIn  Table = "in"
	TableOut Table = "out"
)

func ParseTable(name string) (Table, error) {
	switch Table(name) {
	case TableIn, TableOut:
		return Table(name), nil
	}
	return "", fmt.Errorf("unknown table %q", name)
}

// Record is a single attendance entry, keyed by RollNum. only
// NewRecord should construct one that is going to be written.
type Record struct {
	RollNum    string    `json:"roll_num" validate:"notblank"`
	Name       string    `json:"name" validate:"notblank"`
	Department string    `json:"department" validate:"notblank"`
	Time       time.Time `json:"time"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("notblank", validators.NotBlank)
	if err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})
	return v
}

// NewRecord validates the raw fields of an attendance entry. name and
// department are trimmed, rollNum is kept as given. a zero `at` means
// now on the campus clock.
func NewRecord(rollNum, name, department string, at time.Time) (Record, error) {
	if at.IsZero() {
		at = timezone.Now()
	}
	record := Record{
		RollNum:    rollNum,
		Name:       strings.TrimSpace(name),
		Department: strings.TrimSpace(department),
		Time:       at,
	}

	err := validate.Struct(record)
	if err == nil {
		return record, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field()
	}
	return Record{}, fmt.Errorf("%w: %s cannot be empty", ErrInvalidRecord, strings.Join(fields, ", "))
}
