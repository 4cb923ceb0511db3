package ros

import (
	gotime "time"
)

const secondInNanosecond = 1000000000

//Time is a ROS time stamp {sec,nsec}
type Time struct {
	Sec  uint32
	NSec uint32
}

//NewTime creates a Time object of given integers {sec,nsec}
func NewTime(sec uint32, nsec uint32) Time {
	sec += nsec / secondInNanosecond
	nsec = nsec % secondInNanosecond
	return Time{sec, nsec}
}

//Now creates a Time object of value Now
func Now() Time {
	return FromTime(gotime.Now())
}

//FromTime converts a wall clock time into a Time
func FromTime(t gotime.Time) Time {
	ns := t.UnixNano()
	return Time{uint32(ns / secondInNanosecond), uint32(ns % secondInNanosecond)}
}

//IsZero reports whether the stamp is unset
func (t Time) IsZero() bool {
	return t.Sec == 0 && t.NSec == 0
}

//ToTime converts the stamp into a wall clock time
func (t Time) ToTime() gotime.Time {
	return gotime.Unix(int64(t.Sec), int64(t.NSec))
}
