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

// Package datetime provides value types for calendar dates, times of
// day and their combination, with millisecond resolution over the
// years 1 through 9999 of the proleptic Gregorian calendar.
//
// The central type is Datetime, a Date paired with a Time. Its zero
// value is the default value 0001-01-01_24:00:00.000, whose reserved
// 24:00:00.000 time of day marks a Datetime nothing has been assigned
// to. The reserved time of day never pairs with any other date, and
// every mutating or arithmetic operation treats it as midnight, so a
// default value entering a computation behaves as 0001-01-01
// 00:00:00.000. Only assignment can retain it.
//
// Operations whose field arguments may come from an untrusted source
// have checked variants (NewDatetime, SetDatetimeIfValid) returning an
// error; the unchecked variants panic when handed values their
// documented contract excludes.
//
// Values externalize through the bstream subpackage in a versioned,
// byte-order independent format suitable for exchange with other
// implementations of the same wire contract.
package datetime

import (
	"time"

	"github.com/neo4j/datetime-go/datetime/bstream"
)

// streamVersion1 is the only externalization format version so far.
const streamVersion1 = 1

// Datetime is a Date and a Time of that date. The zero value is the
// default value: the default date 0001-01-01 paired with the reserved
// time of day 24:00:00.000.
//
// Datetime is a plain value: it is copied, compared with == and usable
// as a map key.
type Datetime struct {
	date Date
	time Time
}

// timeOfDayFields expands up to four optional time of day fields.
func timeOfDayFields(fields []int) (hour, minute, second, millisecond int) {
	if len(fields) > 4 {
		panic("datetime: more than four time of day fields")
	}
	if len(fields) > 0 {
		hour = fields[0]
		minute, second, millisecond = clockFields(fields[1:])
	}
	return hour, minute, second, millisecond
}

// ValidDatetime reports whether the fields form a supported Datetime
// value: the date fields must form a supported calendar date, the time
// of day fields (hour and up to three more, each defaulting to 0) a
// supported time of day, and hour 24 pairs only with the default date.
func ValidDatetime(year, month, day int, timeOfDay ...int) bool {
	hour, minute, second, millisecond := timeOfDayFields(timeOfDay)
	return validDatetimeFields(year, month, day, hour, minute, second, millisecond)
}

func validDatetimeFields(year, month, day, hour, minute, second, millisecond int) bool {
	if !validYearMonthDay(year, month, day) {
		return false
	}
	if !ValidTime(hour, minute, second, millisecond) {
		return false
	}
	return hour != 24 || (year == 1 && month == 1 && day == 1)
}

// CanCombine reports whether the date and time form a supported
// Datetime value. Every pair qualifies except the reserved time of day
// with a non-default date.
func CanCombine(d Date, t Time) bool {
	return t != (Time{}) || d == (Date{})
}

// DatetimeOf returns the Datetime with the given date fields and up to
// four time of day fields: hour, minute, second and millisecond, each
// defaulting to 0. It panics unless ValidDatetime accepts the fields.
func DatetimeOf(year, month, day int, timeOfDay ...int) Datetime {
	hour, minute, second, millisecond := timeOfDayFields(timeOfDay)
	if !validDatetimeFields(year, month, day, hour, minute, second, millisecond) {
		panic("datetime: DatetimeOf with invalid fields")
	}
	return Datetime{
		date: Date{days: serialOfYearMonthDay(year, month, day)},
		time: timeOfMillis(clockMillis(hour, minute, second, millisecond)),
	}
}

// NewDatetime is the checked variant of DatetimeOf, with all seven
// fields explicit.
func NewDatetime(year, month, day, hour, minute, second, millisecond int) (Datetime, error) {
	if !validDatetimeFields(year, month, day, hour, minute, second, millisecond) {
		return Datetime{}, newInvalidValueError(
			"Invalid datetime %04d-%02d-%02d %02d:%02d:%02d.%03d",
			year, month, day, hour, minute, second, millisecond)
	}
	return Datetime{
		date: Date{days: serialOfYearMonthDay(year, month, day)},
		time: timeOfMillis(clockMillis(hour, minute, second, millisecond)),
	}, nil
}

// FromDate returns midnight of the given date.
func FromDate(d Date) Datetime {
	return Datetime{date: d, time: timeOfMillis(0)}
}

// Combine returns the Datetime pairing the given date and time. It
// panics unless CanCombine accepts the pair.
func Combine(d Date, t Time) Datetime {
	if !CanCombine(d, t) {
		panic("datetime: Combine pairs the reserved time of day with a non-default date")
	}
	return Datetime{date: d, time: t}
}

// Date returns the date part.
func (dt Datetime) Date() Date {
	return dt.date
}

// Time returns the time of day part.
func (dt Datetime) Time() Time {
	return dt.time
}

// Year returns the year, in [1..9999].
func (dt Datetime) Year() int {
	return dt.date.Year()
}

// Month returns the month, in [1..12].
func (dt Datetime) Month() int {
	return dt.date.Month()
}

// Day returns the day of the month, in [1..31].
func (dt Datetime) Day() int {
	return dt.date.Day()
}

// DayOfYear returns the ordinal day within the year, in [1..366].
func (dt Datetime) DayOfYear() int {
	return dt.date.DayOfYear()
}

// DayOfWeek returns the day of the week of the date part.
func (dt Datetime) DayOfWeek() time.Weekday {
	return dt.date.DayOfWeek()
}

// Hour returns the hour, in [0..23], or 24 for the default value.
func (dt Datetime) Hour() int {
	return dt.time.Hour()
}

// Minute returns the minute, in [0..59].
func (dt Datetime) Minute() int {
	return dt.time.Minute()
}

// Second returns the second, in [0..59].
func (dt Datetime) Second() int {
	return dt.time.Second()
}

// Millisecond returns the millisecond, in [0..999].
func (dt Datetime) Millisecond() int {
	return dt.time.Millisecond()
}

// normalizeDefault rewrites the default value as midnight of the
// default date. Mutators that replace less than the whole value call
// it first so the reserved time of day never survives a change to any
// other field.
func (dt *Datetime) normalizeDefault() {
	if *dt == (Datetime{}) {
		dt.time = timeOfMillis(0)
	}
}

// SetDatetime replaces the whole value with the given date fields and
// up to four time of day fields. It panics unless ValidDatetime
// accepts the fields.
func (dt *Datetime) SetDatetime(year, month, day int, timeOfDay ...int) {
	hour, minute, second, millisecond := timeOfDayFields(timeOfDay)
	if !validDatetimeFields(year, month, day, hour, minute, second, millisecond) {
		panic("datetime: SetDatetime with invalid fields")
	}
	dt.date = Date{days: serialOfYearMonthDay(year, month, day)}
	dt.time = timeOfMillis(clockMillis(hour, minute, second, millisecond))
}

// SetDatetimeIfValid replaces the whole value with the given fields,
// or returns an error and leaves the value untouched if ValidDatetime
// rejects them.
func (dt *Datetime) SetDatetimeIfValid(year, month, day, hour, minute, second, millisecond int) error {
	if !validDatetimeFields(year, month, day, hour, minute, second, millisecond) {
		return newInvalidValueError(
			"Invalid datetime %04d-%02d-%02d %02d:%02d:%02d.%03d",
			year, month, day, hour, minute, second, millisecond)
	}
	dt.date = Date{days: serialOfYearMonthDay(year, month, day)}
	dt.time = timeOfMillis(clockMillis(hour, minute, second, millisecond))
	return nil
}

// SetDate replaces the date part, leaving the time of day alone except
// that the default value is normalized to midnight first.
func (dt *Datetime) SetDate(d Date) {
	dt.normalizeDefault()
	dt.date = d
}

// SetYearMonthDay replaces the date part with the given calendar
// fields, normalizing the default value like SetDate. It panics unless
// ValidYearMonthDay accepts the fields.
func (dt *Datetime) SetYearMonthDay(year, month, day int) {
	if !validYearMonthDay(year, month, day) {
		panic("datetime: SetYearMonthDay with invalid calendar date")
	}
	dt.normalizeDefault()
	dt.date = Date{days: serialOfYearMonthDay(year, month, day)}
}

// SetYearDay replaces the date part with the given year and day of
// year, normalizing the default value like SetDate. It panics unless
// ValidYearDay accepts the fields.
func (dt *Datetime) SetYearDay(year, dayOfYear int) {
	if !validYearDay(year, dayOfYear) {
		panic("datetime: SetYearDay with invalid day of year")
	}
	dt.normalizeDefault()
	dt.date = Date{days: serialOfYearDay(year, dayOfYear)}
}

// SetTime replaces the time of day part, leaving the date alone. It
// panics unless CanCombine accepts the resulting pair.
func (dt *Datetime) SetTime(t Time) {
	if !CanCombine(dt.date, t) {
		panic("datetime: SetTime pairs the reserved time of day with a non-default date")
	}
	dt.time = t
}

// SetTimeOf replaces the time of day part with the given hour and up
// to three more fields. It panics unless ValidTime accepts the fields
// and CanCombine accepts the resulting pair.
func (dt *Datetime) SetTimeOf(hour int, rest ...int) {
	minute, second, millisecond := clockFields(rest)
	if !ValidTime(hour, minute, second, millisecond) {
		panic("datetime: SetTimeOf with invalid time of day")
	}
	t := timeOfMillis(clockMillis(hour, minute, second, millisecond))
	if !CanCombine(dt.date, t) {
		panic("datetime: SetTimeOf pairs the reserved time of day with a non-default date")
	}
	dt.time = t
}

// SetHour replaces the hour, in [0..24]. Hour 24 requires the default
// date and resets the remaining time of day fields, making SetHour(24)
// the only mutator that reaches the reserved time of day. Any other
// hour normalizes the default value to midnight first and leaves the
// remaining fields alone.
func (dt *Datetime) SetHour(hour int) {
	if hour < 0 || hour > 24 {
		panic("datetime: SetHour with invalid hour")
	}
	if hour == 24 {
		if dt.date != (Date{}) {
			panic("datetime: SetHour pairs the reserved time of day with a non-default date")
		}
		dt.time = Time{}
		return
	}
	dt.normalizeDefault()
	dt.time = timeOfMillis(dt.time.millisOfDay()%millisPerHour + int32(hour)*millisPerHour)
}

// SetMinute replaces the minute, in [0..59], normalizing the default
// value to midnight first.
func (dt *Datetime) SetMinute(minute int) {
	if minute < 0 || minute > 59 {
		panic("datetime: SetMinute with invalid minute")
	}
	dt.normalizeDefault()
	ms := dt.time.millisOfDay()
	ms -= ms / millisPerMinute % 60 * millisPerMinute
	dt.time = timeOfMillis(ms + int32(minute)*millisPerMinute)
}

// SetSecond replaces the second, in [0..59], normalizing the default
// value to midnight first.
func (dt *Datetime) SetSecond(second int) {
	if second < 0 || second > 59 {
		panic("datetime: SetSecond with invalid second")
	}
	dt.normalizeDefault()
	ms := dt.time.millisOfDay()
	ms -= ms / millisPerSecond % 60 * millisPerSecond
	dt.time = timeOfMillis(ms + int32(second)*millisPerSecond)
}

// SetMillisecond replaces the millisecond, in [0..999], normalizing
// the default value to midnight first.
func (dt *Datetime) SetMillisecond(millisecond int) {
	if millisecond < 0 || millisecond > 999 {
		panic("datetime: SetMillisecond with invalid millisecond")
	}
	dt.normalizeDefault()
	ms := dt.time.millisOfDay()
	dt.time = timeOfMillis(ms - ms%millisPerSecond + int32(millisecond))
}

// AddDays shifts the date part by the given signed number of days,
// normalizing the default value to midnight first and leaving the time
// of day alone. It panics if the date leaves the supported calendar
// range.
func (dt *Datetime) AddDays(days int) {
	result, err := dt.date.AddDaysIfValid(days)
	if err != nil {
		panic("datetime: AddDays out of range")
	}
	dt.normalizeDefault()
	dt.date = result
}

// addMillis shifts the value by a signed millisecond delta, carrying
// whole days between the time of day and the date. The default value
// enters as midnight of the default date.
func (dt *Datetime) addMillis(delta int64, op string) {
	t, days := dt.time.AddMilliseconds(delta)
	serial := int64(dt.date.days) + days
	if serial < minSerialDay || serial > maxSerialDay {
		panic("datetime: " + op + " out of range")
	}
	dt.date = Date{days: int32(serial)}
	dt.time = t
}

// AddHours shifts the value by the given signed number of hours. It
// panics if the result leaves the supported range.
func (dt *Datetime) AddHours(hours int64) {
	dt.addMillis(hours*millisPerHour, "AddHours")
}

// AddMinutes shifts the value by the given signed number of minutes.
// It panics if the result leaves the supported range.
func (dt *Datetime) AddMinutes(minutes int64) {
	dt.addMillis(minutes*millisPerMinute, "AddMinutes")
}

// AddSeconds shifts the value by the given signed number of seconds.
// It panics if the result leaves the supported range.
func (dt *Datetime) AddSeconds(seconds int64) {
	dt.addMillis(seconds*millisPerSecond, "AddSeconds")
}

// AddMilliseconds shifts the value by the given signed number of
// milliseconds. It panics if the result leaves the supported range.
func (dt *Datetime) AddMilliseconds(milliseconds int64) {
	dt.addMillis(milliseconds, "AddMilliseconds")
}

// AddTime shifts the value by the sum of the given hours and up to
// three more field totals: minutes, seconds and milliseconds, each
// defaulting to 0. The fields are independent signed totals, not
// digits. It panics if the result leaves the supported range.
func (dt *Datetime) AddTime(hours int64, rest ...int64) {
	var minutes, seconds, milliseconds int64
	switch len(rest) {
	case 0:
	case 1:
		minutes = rest[0]
	case 2:
		minutes, seconds = rest[0], rest[1]
	case 3:
		minutes, seconds, milliseconds = rest[0], rest[1], rest[2]
	default:
		panic("datetime: more than four time of day fields")
	}
	dt.addMillis(hours*millisPerHour+
		minutes*millisPerMinute+
		seconds*millisPerSecond+
		milliseconds, "AddTime")
}

// AddInterval shifts the value forward by the given span. It panics if
// the result leaves the supported range.
func (dt *Datetime) AddInterval(i Interval) {
	dt.addMillis(i.ms, "AddInterval")
}

// SubInterval shifts the value backward by the given span. It panics
// if the result leaves the supported range.
func (dt *Datetime) SubInterval(i Interval) {
	dt.addMillis(-i.ms, "SubInterval")
}

// Add returns a copy of dt shifted forward by the given span. It
// panics if the result leaves the supported range.
func (dt Datetime) Add(i Interval) Datetime {
	dt.AddInterval(i)
	return dt
}

// Sub returns a copy of dt shifted backward by the given span. It
// panics if the result leaves the supported range.
func (dt Datetime) Sub(i Interval) Datetime {
	dt.SubInterval(i)
	return dt
}

// Diff returns the signed span from rhs to dt. An operand holding the
// default value contributes as midnight of the default date, so for
// any two values a and b free of the reserved time of day,
// b.Add(a.Diff(b)) == a.
func (dt Datetime) Diff(rhs Datetime) Interval {
	days := int64(dt.date.days) - int64(rhs.date.days)
	ms := int64(dt.time.nonReservedMillis()) - int64(rhs.time.nonReservedMillis())
	return Interval{ms: days*millisPerDay + ms}
}

// Equal reports whether the two values have identical date and time of
// day fields. Unlike the ordering methods it is defined for every
// value, the default value included.
func (dt Datetime) Equal(rhs Datetime) bool {
	return dt == rhs
}

// Before reports whether dt is earlier than rhs, comparing the dates
// first and the times of day second. Ordering involving the reserved
// time of day is undefined.
func (dt Datetime) Before(rhs Datetime) bool {
	if dt.date.days != rhs.date.days {
		return dt.date.days < rhs.date.days
	}
	return dt.time.ms < rhs.time.ms
}

// After reports whether dt is later than rhs, with the same reserved
// time of day restriction as Before.
func (dt Datetime) After(rhs Datetime) bool {
	return rhs.Before(dt)
}

// Compare returns -1, 0 or 1 as dt sorts before, equal to or after
// rhs, with the same reserved time of day restriction as Before.
func (dt Datetime) Compare(rhs Datetime) int {
	if c := dt.date.Compare(rhs.date); c != 0 {
		return c
	}
	return dt.time.Compare(rhs.time)
}

// MaxStreamVersion returns the most recent externalization format
// version supported by this package. The selector lets callers pin
// the formats of a given release; every selector so far maps to
// version 1.
func MaxStreamVersion(versionSelector int) int {
	return streamVersion1
}

// StreamOut externalizes dt on s in the given format version, date
// part first. An unsupported version invalidates the stream and writes
// nothing.
func (dt Datetime) StreamOut(s *bstream.OutStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	dt.date.StreamOut(s, version)
	dt.time.StreamOut(s, version)
}

// StreamIn replaces dt with a value read from s in the given format
// version. On any failure the stream is invalidated and dt is left
// unchanged; a pair of parts no Datetime may hold counts as a failure.
func (dt *Datetime) StreamIn(s *bstream.InStream, version int) {
	if version != streamVersion1 {
		s.InvalidateWith(&bstream.UnsupportedVersionError{Version: version})
		return
	}
	var d Date
	var t Time
	d.StreamIn(s, version)
	t.StreamIn(s, version)
	if !s.Valid() {
		return
	}
	if !CanCombine(d, t) {
		s.InvalidateWith(newInvalidValueError(
			"Externalized date and time pair the reserved time of day with a non-default date"))
		return
	}
	dt.date = d
	dt.time = t
}

// MarshalBinary implements encoding.BinaryMarshaler using the version
// 1 stream format.
func (dt Datetime) MarshalBinary() ([]byte, error) {
	s := bstream.NewOutStream()
	dt.StreamOut(s, streamVersion1)
	if !s.Valid() {
		return nil, s.Err()
	}
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using the
// version 1 stream format. Trailing bytes are rejected.
func (dt *Datetime) UnmarshalBinary(data []byte) error {
	s := bstream.NewInStream(data)
	var tmp Datetime
	tmp.StreamIn(s, streamVersion1)
	if !s.Valid() {
		return s.Err()
	}
	if s.Remaining() != 0 {
		return newInvalidValueError(
			"%d byte(s) of trailing data after externalized datetime", s.Remaining())
	}
	*dt = tmp
	return nil
}
