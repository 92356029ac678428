package players

import "time"

// TimeProvider supplies timestamps so repository tests can pin the clock
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// NewRealTimeProvider returns a TimeProvider backed by the system clock
func NewRealTimeProvider() TimeProvider {
	return realTimeProvider{}
}
