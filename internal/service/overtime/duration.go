package overtime

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var msPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// DurationHours is the absolute span between start and end on date, in hours,
// rounded half away from zero to places decimals. date is YYYY-MM-DD and the
// times are HH:MM. Callers are expected to have checked start < end.
func DurationHours(date, start, end string, places int32) (decimal.Decimal, error) {
	from, err := time.Parse("2006-01-02 15:04", date+" "+start)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid start time: %w", err)
	}
	to, err := time.Parse("2006-01-02 15:04", date+" "+end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid end time: %w", err)
	}

	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}

	ms := decimal.NewFromInt(diff.Milliseconds())
	return ms.Div(msPerHour).Round(places), nil
}
