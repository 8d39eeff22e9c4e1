package timezone

import (
	"hostel/config"
	"time"

	"github.com/rs/zerolog/log"
)

var hostelLocation = load(config.Get().App.Timezone)

// load resolves name with time.LoadLocation. An empty or unknown name falls
// back to UTC so a misconfigured zone never stops the server.
func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("no timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC; use IANA names such as Asia/Kolkata")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("hostel timezone loaded")

	return loc
}

// GetLocation is the zone every date in the portal is interpreted in.
func GetLocation() *time.Location {
	return hostelLocation
}

func Now() time.Time {
	return time.Now().In(hostelLocation)
}

// Parse reads value as a wall clock time in the hostel timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, hostelLocation)
}

func Format(t time.Time, layout string) string {
	return t.In(hostelLocation).Format(layout)
}

// StartOfDay truncates t to midnight in the hostel timezone.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.In(hostelLocation).Date()

	return time.Date(year, month, day, 0, 0, 0, 0, hostelLocation)
}

// Today returns midnight of the current day.
func Today() time.Time {
	return StartOfDay(Now())
}

// Days returns n consecutive midnights starting at from.
func Days(from time.Time, n int) []time.Time {
	start := StartOfDay(from)
	days := make([]time.Time, 0, max(n, 0))

	for i := range n {
		days = append(days, start.AddDate(0, 0, i))
	}

	return days
}
