/*
 * Copyright (c) "Neo4j"
 * Neo4j Sweden AB [https://neo4j.com]
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package datetime

import (
	"github.com/neo4j/datetime-go/datetime/bstream"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// Time is a time of day with millisecond resolution, 00:00:00.000
// through 23:59:59.999, plus the reserved value 24:00:00.000 that only
// ever occurs as the time part of the default Datetime. The zero value
// is the reserved value.
//
// Time is a plain value: it is copied, compared with == and usable as
// a map key.
type Time struct {
	// The time of day stored as a millisecond offset below the
	// reserved 24:00:00.000 point: -86400000 is midnight, -1 is
	// 23:59:59.999 and 0 is the reserved value itself. The offset form
	// keeps the zero value reserved while staying monotonic in time of
	// day.
	ms int32
}

// ValidTime reports whether the fields form a supported time of day.
// Hour 24 is admitted only as exactly 24:00:00.000, the reserved
// value.
func ValidTime(hour, minute, second, millisecond int) bool {
	if hour == 24 {
		return minute == 0 && second == 0 && millisecond == 0
	}
	return hour >= 0 && hour < 24 &&
		minute >= 0 && minute < 60 &&
		second >= 0 && second < 60 &&
		millisecond >= 0 && millisecond < 1000
}

// TimeOf returns the time of day with the given hour and up to three
// more fields: minute, second and millisecond, each defaulting to 0.
// TimeOf(24) is the reserved value. It panics unless ValidTime accepts
// the fields.
func TimeOf(hour int, rest ...int) Time {
	minute, second, millisecond := clockFields(rest)
	if !ValidTime(hour, minute, second, millisecond) {
		panic("datetime: TimeOf with invalid time of day")
	}
	return timeOfMillis(clockMillis(hour, minute, second, millisecond))
}

// NewTime is the checked variant of TimeOf, with all four fields
// explicit.
func NewTime(hour, minute, second, millisecond int) (Time, error) {
	if !ValidTime(hour, minute, second, millisecond) {
		return Time{}, newInvalidValueError(
			"Invalid time of day %02d:%02d:%02d.%03d", hour, minute, second, millisecond)
	}
	return timeOfMillis(clockMillis(hour, minute, second, millisecond)), nil
}

// clockFields expands up to three optional time of day fields.
func clockFields(rest []int) (minute, second, millisecond int) {
	switch len(rest) {
	case 0:
	case 1:
		minute = rest[0]
	case 2:
		minute, second = rest[0], rest[1]
	case 3:
		minute, second, millisecond = rest[0], rest[1], rest[2]
	default:
		panic("datetime: more than four time of day fields")
	}
	return minute, second, millisecond
}

func clockMillis(hour, minute, second, millisecond int) int32 {
	return int32(hour)*millisPerHour + int32(minute)*millisPerMinute +
		int32(second)*millisPerSecond + int32(millisecond)
}

// timeOfMillis converts milliseconds of the day, 86400000 meaning the
// reserved value, into the stored offset form.
func timeOfMillis(ms int32) Time {
	return Time{ms: ms - millisPerDay}
}

// millisOfDay is the inverse of timeOfMillis.
func (t Time) millisOfDay() int32 {
	return t.ms + millisPerDay
}

// nonReservedMillis returns the milliseconds of the day with the
// reserved value mapped to midnight.
func (t Time) nonReservedMillis() int32 {
	ms := t.millisOfDay()
	if ms == millisPerDay {
		return 0
	}
	return ms
}

// Hour returns the hour, in [0..23], or 24 for the reserved value.
func (t Time) Hour() int {
	return int(t.millisOfDay() / millisPerHour)
}

// Minute returns the minute, in [0..59].
func (t Time) Minute() int {
	return int(t.millisOfDay() / millisPerMinute % 60)
}

// Second returns the second, in [0..59].
func (t Time) Second() int {
	return int(t.millisOfDay() / millisPerSecond % 60)
}

// Millisecond returns the millisecond, in [0..999].
func (t Time) Millisecond() int {
	return int(t.millisOfDay() % millisPerSecond)
}

// MillisecondOfDay returns the time of day as milliseconds since
// midnight, 86400000 for the reserved value.
func (t Time) MillisecondOfDay() int {
	return int(t.millisOfDay())
}

// AddMilliseconds returns the time of day moved by the given signed
// millisecond delta, wrapped into [00:00:00.000..23:59:59.999], along
// with the signed number of whole days the move spilled across
// midnight. The reserved value counts as midnight.
func (t Time) AddMilliseconds(delta int64) (Time, int64) {
	ms := int64(t.nonReservedMillis()) + delta
	days := floorDiv(ms, millisPerDay)
	return timeOfMillis(int32(ms - days*millisPerDay)), days
}

// Sub returns the signed span from rhs to t. An operand equal to the
// reserved value contributes as midnight.
func (t Time) Sub(rhs Time) Interval {
	return Interval{ms: int64(t.nonReservedMillis()) - int64(rhs.nonReservedMillis())}
}

// Before reports whether t is earlier in the day than rhs. Ordering
// involving the reserved value is undefined.
func (t Time) Before(rhs Time) bool {
	return t.ms < rhs.ms
}

// After reports whether t is later in the day than rhs, with the same
// reserved value restriction as Before.
func (t Time) After(rhs Time) bool {
	return t.ms > rhs.ms
}

// Compare returns -1, 0 or 1 as t sorts before, equal to or after rhs,
// with the same reserved value restriction as Before.
func (t Time) Compare(rhs Time) int {
	switch {
	case t.ms < rhs.ms:
		return -1
	case t.ms > rhs.ms:
		return 1
	default:
		return 0
	}
}

// StreamOut externalizes t on s in the given format version. An
// unsupported version invalidates the stream and writes nothing.
func (t Time) StreamOut(s *bstream.OutStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	s.WriteInt32(t.millisOfDay())
}

// StreamIn replaces t with a value read from s in the given format
// version. On any failure the stream is invalidated and t is left
// unchanged.
func (t *Time) StreamIn(s *bstream.InStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	ms := s.ReadInt32()
	if !s.Valid() {
		return
	}
	if ms < 0 || ms > millisPerDay {
		s.InvalidateWith(newInvalidValueError(
			"Externalized millisecond count %d is outside the day range", ms))
		return
	}
	t.ms = ms - millisPerDay
}

// MarshalBinary implements encoding.BinaryMarshaler using the version
// 1 stream format.
func (t Time) MarshalBinary() ([]byte, error) {
	s := bstream.NewOutStream()
	t.StreamOut(s, streamVersion1)
	if !s.Valid() {
		return nil, s.Err()
	}
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using the
// version 1 stream format. Trailing bytes are rejected.
func (t *Time) UnmarshalBinary(data []byte) error {
	s := bstream.NewInStream(data)
	var tmp Time
	tmp.StreamIn(s, streamVersion1)
	if !s.Valid() {
		return s.Err()
	}
	if s.Remaining() != 0 {
		return newInvalidValueError(
			"%d byte(s) of trailing data after externalized time", s.Remaining())
	}
	*t = tmp
	return nil
}
