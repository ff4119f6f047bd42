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

// Date is a calendar date in the proleptic Gregorian calendar,
// 0001-01-01 through 9999-12-31. The zero value is 0001-01-01, the
// default date.
//
// Date is a plain value: it is copied, compared with == and usable as
// a map key.
type Date struct {
	// Days since 0001-01-01, in [0..3652058].
	days int32
}

// ValidYearMonthDay reports whether the fields form a supported
// calendar date.
func ValidYearMonthDay(year, month, day int) bool {
	return validYearMonthDay(year, month, day)
}

// ValidYearDay reports whether the year and day of year form a
// supported calendar date. Day 366 is accepted in leap years only.
func ValidYearDay(year, dayOfYear int) bool {
	return validYearDay(year, dayOfYear)
}

// DateOf returns the date with the given year, month and day. It
// panics unless ValidYearMonthDay accepts the fields.
func DateOf(year, month, day int) Date {
	if !validYearMonthDay(year, month, day) {
		panic("datetime: DateOf with invalid calendar date")
	}
	return Date{days: serialOfYearMonthDay(year, month, day)}
}

// NewDate is the checked variant of DateOf.
func NewDate(year, month, day int) (Date, error) {
	if !validYearMonthDay(year, month, day) {
		return Date{}, newInvalidValueError(
			"Invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return Date{days: serialOfYearMonthDay(year, month, day)}, nil
}

// YearDayDateOf returns the date with the given year and day of year.
// It panics unless ValidYearDay accepts the fields.
func YearDayDateOf(year, dayOfYear int) Date {
	if !validYearDay(year, dayOfYear) {
		panic("datetime: YearDayDateOf with invalid day of year")
	}
	return Date{days: serialOfYearDay(year, dayOfYear)}
}

// NewYearDayDate is the checked variant of YearDayDateOf.
func NewYearDayDate(year, dayOfYear int) (Date, error) {
	if !validYearDay(year, dayOfYear) {
		return Date{}, newInvalidValueError(
			"Invalid day of year %d in year %04d", dayOfYear, year)
	}
	return Date{days: serialOfYearDay(year, dayOfYear)}, nil
}

// Year returns the year, in [1..9999].
func (d Date) Year() int {
	year, _, _ := yearMonthDayOfSerial(d.days)
	return year
}

// Month returns the month, in [1..12].
func (d Date) Month() int {
	_, month, _ := yearMonthDayOfSerial(d.days)
	return month
}

// Day returns the day of the month, in [1..31].
func (d Date) Day() int {
	_, _, day := yearMonthDayOfSerial(d.days)
	return day
}

// YearMonthDay returns all three calendar fields at once.
func (d Date) YearMonthDay() (year, month, day int) {
	return yearMonthDayOfSerial(d.days)
}

// DayOfYear returns the ordinal day within the year, in [1..366].
func (d Date) DayOfYear() int {
	year, month, day := yearMonthDayOfSerial(d.days)
	ordinal := int(daysBefore[month-1]) + day
	if month > 2 && isLeap(year) {
		ordinal++
	}
	return ordinal
}

// DayOfWeek returns the day of the week. 0001-01-01 is a Monday.
func (d Date) DayOfWeek() time.Weekday {
	return time.Weekday((d.days + 1) % 7)
}

// AddDays returns the date the given signed number of days away. It
// panics if the result leaves the supported calendar range.
func (d Date) AddDays(days int) Date {
	result, err := d.AddDaysIfValid(days)
	if err != nil {
		panic("datetime: AddDays out of range")
	}
	return result
}

// AddDaysIfValid returns the date the given signed number of days
// away, or an error if the result leaves the supported calendar range.
func (d Date) AddDaysIfValid(days int) (Date, error) {
	serial := int64(d.days) + int64(days)
	if serial < minSerialDay || serial > maxSerialDay {
		return Date{}, newInvalidValueError(
			"Shifting %04d-%02d-%02d by %d day(s) leaves the supported calendar range",
			d.Year(), d.Month(), d.Day(), days)
	}
	return Date{days: int32(serial)}, nil
}

// Sub returns the signed number of days from rhs to d.
func (d Date) Sub(rhs Date) int {
	return int(d.days - rhs.days)
}

// Before reports whether d is an earlier date than rhs.
func (d Date) Before(rhs Date) bool {
	return d.days < rhs.days
}

// After reports whether d is a later date than rhs.
func (d Date) After(rhs Date) bool {
	return d.days > rhs.days
}

// Compare returns -1, 0 or 1 as d sorts before, equal to or after rhs.
func (d Date) Compare(rhs Date) int {
	switch {
	case d.days < rhs.days:
		return -1
	case d.days > rhs.days:
		return 1
	default:
		return 0
	}
}

// StreamOut externalizes d on s in the given format version. An
// unsupported version invalidates the stream and writes nothing.
func (d Date) StreamOut(s *bstream.OutStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	s.WriteInt32(d.days)
}

// StreamIn replaces d with a value read from s in the given format
// version. On any failure the stream is invalidated and d is left
// unchanged.
func (d *Date) StreamIn(s *bstream.InStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	days := s.ReadInt32()
	if !s.Valid() {
		return
	}
	if days < minSerialDay || days > maxSerialDay {
		s.InvalidateWith(newInvalidValueError(
			"Externalized day count %d is outside the supported calendar range", days))
		return
	}
	d.days = days
}

// MarshalBinary implements encoding.BinaryMarshaler using the version
// 1 stream format.
func (d Date) MarshalBinary() ([]byte, error) {
	s := bstream.NewOutStream()
	d.StreamOut(s, streamVersion1)
	if !s.Valid() {
		return nil, s.Err()
	}
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using the
// version 1 stream format. Trailing bytes are rejected.
func (d *Date) UnmarshalBinary(data []byte) error {
	s := bstream.NewInStream(data)
	var tmp Date
	tmp.StreamIn(s, streamVersion1)
	if !s.Valid() {
		return s.Err()
	}
	if s.Remaining() != 0 {
		return newInvalidValueError(
			"%d byte(s) of trailing data after externalized date", s.Remaining())
	}
	*d = tmp
	return nil
}
