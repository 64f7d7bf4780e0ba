package timezone

import (
	"fmt"
	"time"

	_ "time/tzdata"
)

// campus clock, attendance timestamps are written in this zone
var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
}

// SetLocation overrides the campus timezone, an empty name keeps the default.
func SetLocation(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", name, err)
	}
	Location = loc
	return nil
}

// the server may not run in the same zone as the campus, so "now"
// is always pinned to Location before it gets formatted into a row
func Now() time.Time {
	return time.Now().In(Location)
}
