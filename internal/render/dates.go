package render

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/weatherchat/backend/internal/domain"
)

// Date-resolution failures. All three are rendered into normal localized
// response text, never surfaced to callers as faults.
var (
	ErrPastDate      = errors.New("requested date is in the past")
	ErrBeyondHorizon = errors.New("requested date is beyond the forecast horizon")
	ErrNoForecastDay = errors.New("no forecast data for requested day")
)

const isoDate = "2006-01-02"

// ResolveDayOffset maps an ISO specific date onto a zero-based index into the
// daily forecast, taking "today" from the snapshot's own local date so a
// stored message re-renders identically later. Both dates are truncated to
// midnight before the day arithmetic.
func ResolveDayOffset(specificDate string, snapshotDate string) (int, error) {
	target, err := time.Parse(isoDate, specificDate)
	if err != nil {
		return 0, errors.Wrap(err, "unparseable specific date")
	}
	today, err := time.Parse(isoDate, snapshotDate)
	if err != nil {
		return 0, errors.Wrap(err, "unparseable snapshot date")
	}

	offset := int(math.Round(target.Sub(today).Hours() / 24))
	if offset < 0 {
		return 0, ErrPastDate
	}
	if offset > domain.ForecastDays-1 {
		return 0, ErrBeyondHorizon
	}
	return offset, nil
}

// dayAt bound-checks a resolved offset against the fetched daily data.
func dayAt(weather *domain.WeatherData, offset int) (*domain.DailyForecast, error) {
	if offset < 0 || offset >= len(weather.Daily) {
		return nil, ErrNoForecastDay
	}
	return &weather.Daily[offset], nil
}
