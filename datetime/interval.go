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
	"time"

	"github.com/neo4j/datetime-go/datetime/bstream"
)

// Interval is a signed span of time with millisecond resolution,
// stored as a single total millisecond count. The zero value is the
// empty span.
//
// Interval is a plain value: it is copied, compared with == and usable
// as a map key.
type Interval struct {
	ms int64
}

// IntervalOf returns the span summing the given field values. The
// fields are independent totals, not digits: IntervalOf(0, 240, 0, 0,
// 0) and IntervalOf(10, 0, 0, 0, 0) are the same span.
func IntervalOf(days, hours, minutes, seconds, milliseconds int64) Interval {
	return Interval{ms: days*millisPerDay +
		hours*millisPerHour +
		minutes*millisPerMinute +
		seconds*millisPerSecond +
		milliseconds}
}

// IntervalOfDuration returns the span closest to d, truncating
// sub-millisecond precision toward zero.
func IntervalOfDuration(d time.Duration) Interval {
	return Interval{ms: d.Milliseconds()}
}

// Duration returns the span as a time.Duration.
func (i Interval) Duration() time.Duration {
	return time.Duration(i.ms) * time.Millisecond
}

// Days returns the whole-day part of the span. All five component
// accessors truncate toward zero and carry the sign of the span.
func (i Interval) Days() int {
	return int(i.ms / millisPerDay)
}

// Hours returns the hour component, in [-23..23].
func (i Interval) Hours() int {
	return int(i.ms / millisPerHour % 24)
}

// Minutes returns the minute component, in [-59..59].
func (i Interval) Minutes() int {
	return int(i.ms / millisPerMinute % 60)
}

// Seconds returns the second component, in [-59..59].
func (i Interval) Seconds() int {
	return int(i.ms / millisPerSecond % 60)
}

// Milliseconds returns the millisecond component, in [-999..999].
func (i Interval) Milliseconds() int {
	return int(i.ms % millisPerSecond)
}

// TotalDays returns the span in whole days, truncating toward zero.
func (i Interval) TotalDays() int {
	return int(i.ms / millisPerDay)
}

// TotalHours returns the span in whole hours, truncating toward zero.
func (i Interval) TotalHours() int64 {
	return i.ms / millisPerHour
}

// TotalMinutes returns the span in whole minutes, truncating toward
// zero.
func (i Interval) TotalMinutes() int64 {
	return i.ms / millisPerMinute
}

// TotalSeconds returns the span in whole seconds, truncating toward
// zero.
func (i Interval) TotalSeconds() int64 {
	return i.ms / millisPerSecond
}

// TotalMilliseconds returns the span in milliseconds.
func (i Interval) TotalMilliseconds() int64 {
	return i.ms
}

// Add returns the sum of the two spans.
func (i Interval) Add(rhs Interval) Interval {
	return Interval{ms: i.ms + rhs.ms}
}

// Sub returns the difference of the two spans.
func (i Interval) Sub(rhs Interval) Interval {
	return Interval{ms: i.ms - rhs.ms}
}

// Negated returns the span with the opposite sign.
func (i Interval) Negated() Interval {
	return Interval{ms: -i.ms}
}

// Before reports whether i is a shorter signed span than rhs.
func (i Interval) Before(rhs Interval) bool {
	return i.ms < rhs.ms
}

// After reports whether i is a longer signed span than rhs.
func (i Interval) After(rhs Interval) bool {
	return i.ms > rhs.ms
}

// Compare returns -1, 0 or 1 as i sorts before, equal to or after rhs.
func (i Interval) Compare(rhs Interval) int {
	switch {
	case i.ms < rhs.ms:
		return -1
	case i.ms > rhs.ms:
		return 1
	default:
		return 0
	}
}

// StreamOut externalizes i on s in the given format version. An
// unsupported version invalidates the stream and writes nothing.
func (i Interval) StreamOut(s *bstream.OutStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	s.WriteInt64(i.ms)
}

// StreamIn replaces i with a value read from s in the given format
// version. On any failure the stream is invalidated and i is left
// unchanged.
func (i *Interval) StreamIn(s *bstream.InStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	ms := s.ReadInt64()
	if !s.Valid() {
		return
	}
	i.ms = ms
}

// MarshalBinary implements encoding.BinaryMarshaler using the version
// 1 stream format.
func (i Interval) MarshalBinary() ([]byte, error) {
	s := bstream.NewOutStream()
	i.StreamOut(s, streamVersion1)
	if !s.Valid() {
		return nil, s.Err()
	}
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using the
// version 1 stream format. Trailing bytes are rejected.
func (i *Interval) UnmarshalBinary(data []byte) error {
	s := bstream.NewInStream(data)
	var tmp Interval
	tmp.StreamIn(s, streamVersion1)
	if !s.Valid() {
		return s.Err()
	}
	if s.Remaining() != 0 {
		return newInvalidValueError(
			"%d byte(s) of trailing data after externalized interval", s.Remaining())
	}
	*i = tmp
	return nil
}
