package chatdb

import "time"

// appleEpoch is the reference instant for native timestamps in the
// Messages database: 2001-01-01T00:00:00Z.
var appleEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// nanosecondThreshold disambiguates the two native timestamp encodings.
// Older macOS releases store whole seconds since appleEpoch; newer ones
// store nanoseconds, and the schema carries no version flag. Real-world
// seconds values stay far below 10^12 while nanosecond values are far
// above it, so the raw magnitude tells them apart. This is a
// compatibility assumption, not a schema guarantee; revisit if the store
// changes encoding again.
const nanosecondThreshold = 1_000_000_000_000

// DecodeTimestamp converts a native message.date value to calendar time.
// Values at or above nanosecondThreshold are nanoseconds since the
// reference epoch; everything below is whole seconds.
func DecodeTimestamp(raw int64) time.Time {
	if raw >= nanosecondThreshold {
		return appleEpoch.Add(time.Duration(raw))
	}
	return time.Unix(appleEpoch.Unix()+raw, 0).UTC()
}

// EncodeTimestamp converts calendar time to a native timestamp in
// nanosecond units. Encoding always emits nanoseconds, so bounds built
// with it are only meaningful against stores using the nanosecond
// encoding. Round-tripping through DecodeTimestamp can be off by one
// nanosecond because the conversion goes through a float64 second count.
func EncodeTimestamp(t time.Time) int64 {
	return int64(t.Sub(appleEpoch).Seconds() * 1e9)
}
