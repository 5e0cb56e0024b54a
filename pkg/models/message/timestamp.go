package message

import "time"

// TimeStamp is a second-resolution wall-clock string, human-readable in
// journals and mongo documents alike.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(time.DateTime))
}

func (ts TimeStamp) Time() time.Time {
	parsed, _ := time.Parse(time.DateTime, string(ts))
	return parsed
}
