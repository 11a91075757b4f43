package service

import "time"

// clock returns the current time from now, or the wall clock when now is
// nil. Every timestamp the services write is UTC.
func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}
