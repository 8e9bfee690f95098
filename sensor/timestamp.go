package sensor

import "time"

type Timestamp string

const RFC3339Milli = "2006-01-02T15:04:05.999Z07:00"

// ModificationLayout matches the way the sensor page has always printed file times.
const ModificationLayout = "2006-01-02 15:04:05 -0700"

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(RFC3339Milli))
}

func ModificationTime(t time.Time) string {
	return t.Local().Format(ModificationLayout)
}
