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
	"io"
	"strconv"
)

// Fixed rendering widths. Interval renderings vary with the day count.
const (
	dateStringLen     = len("06JAN2013")
	timeStringLen     = len("20:43:00.000")
	datetimeStringLen = dateStringLen + 1 + timeStringLen
)

var monthAbbrev = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// appendPadded appends v as width zero padded decimal digits. v must
// be non-negative and fit the width.
func appendPadded(buf []byte, v, width int) []byte {
	var digits [4]byte
	for i := width - 1; i >= 0; i-- {
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, digits[:width]...)
}

func (d Date) appendTo(buf []byte) []byte {
	year, month, day := yearMonthDayOfSerial(d.days)
	buf = appendPadded(buf, day, 2)
	buf = append(buf, monthAbbrev[month-1]...)
	return appendPadded(buf, year, 4)
}

func (t Time) appendTo(buf []byte) []byte {
	ms := t.millisOfDay()
	buf = appendPadded(buf, int(ms/millisPerHour), 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, int(ms/millisPerMinute%60), 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, int(ms/millisPerSecond%60), 2)
	buf = append(buf, '.')
	return appendPadded(buf, int(ms%millisPerSecond), 3)
}

func (dt Datetime) appendTo(buf []byte) []byte {
	buf = dt.date.appendTo(buf)
	buf = append(buf, '_')
	return dt.time.appendTo(buf)
}

func (i Interval) appendTo(buf []byte) []byte {
	u := uint64(i.ms)
	if i.ms < 0 {
		buf = append(buf, '-')
		u = -u
	} else {
		buf = append(buf, '+')
	}
	buf = strconv.AppendUint(buf, u/millisPerDay, 10)
	buf = append(buf, '_')
	rem := u % millisPerDay
	buf = appendPadded(buf, int(rem/millisPerHour), 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, int(rem/millisPerMinute%60), 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, int(rem/millisPerSecond%60), 2)
	buf = append(buf, '.')
	return appendPadded(buf, int(rem%millisPerSecond), 3)
}

// String renders the date as ddMONyyyy, for example 06JAN2013.
func (d Date) String() string {
	return string(d.appendTo(make([]byte, 0, dateStringLen)))
}

// String renders the time of day as hh:mm:ss.sss, for example
// 20:43:00.000. The reserved value renders as 24:00:00.000.
func (t Time) String() string {
	return string(t.appendTo(make([]byte, 0, timeStringLen)))
}

// String renders the value as ddMONyyyy_hh:mm:ss.sss, for example
// 06JAN2013_20:43:00.000.
func (dt Datetime) String() string {
	return string(dt.appendTo(make([]byte, 0, datetimeStringLen)))
}

// String renders the span as a sign, a day count, an underscore and an
// hh:mm:ss.sss clock, for example +0_06:00:09.000 or -12_23:00:00.500.
// Every piece after the sign carries the magnitude.
func (i Interval) String() string {
	return string(i.appendTo(make([]byte, 0, 32)))
}

// printRendered writes text with the indentation regime shared by the
// Print methods: spacesPerLevel of 0 or more indents by
// level*spacesPerLevel spaces and ends the line, a negative
// spacesPerLevel writes the bare text for embedding in a single line.
func printRendered(w io.Writer, text []byte, level, spacesPerLevel int) error {
	var buf []byte
	if spacesPerLevel >= 0 && level > 0 {
		buf = make([]byte, 0, level*spacesPerLevel+len(text)+1)
		for i := 0; i < level*spacesPerLevel; i++ {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, text...)
	if spacesPerLevel >= 0 {
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}

// PrintToBuffer renders the date into buf without allocating past it
// and returns the length of the full rendering, which exceeds len(buf)
// when the rendering was cut short.
func (d Date) PrintToBuffer(buf []byte) int {
	var scratch [dateStringLen]byte
	text := d.appendTo(scratch[:0])
	copy(buf, text)
	return len(text)
}

// PrintToBuffer renders the time of day into buf like
// Date.PrintToBuffer.
func (t Time) PrintToBuffer(buf []byte) int {
	var scratch [timeStringLen]byte
	text := t.appendTo(scratch[:0])
	copy(buf, text)
	return len(text)
}

// PrintToBuffer renders the value into buf like Date.PrintToBuffer.
func (dt Datetime) PrintToBuffer(buf []byte) int {
	var scratch [datetimeStringLen]byte
	text := dt.appendTo(scratch[:0])
	copy(buf, text)
	return len(text)
}

// PrintToBuffer renders the span into buf like Date.PrintToBuffer.
func (i Interval) PrintToBuffer(buf []byte) int {
	var scratch [32]byte
	text := i.appendTo(scratch[:0])
	copy(buf, text)
	return len(text)
}

// Print writes the date to w, indented by level steps of
// spacesPerLevel spaces and followed by a newline. A negative
// spacesPerLevel suppresses both for single line embedding.
func (d Date) Print(w io.Writer, level, spacesPerLevel int) error {
	var scratch [dateStringLen]byte
	return printRendered(w, d.appendTo(scratch[:0]), level, spacesPerLevel)
}

// Print writes the time of day to w like Date.Print.
func (t Time) Print(w io.Writer, level, spacesPerLevel int) error {
	var scratch [timeStringLen]byte
	return printRendered(w, t.appendTo(scratch[:0]), level, spacesPerLevel)
}

// Print writes the value to w like Date.Print.
func (dt Datetime) Print(w io.Writer, level, spacesPerLevel int) error {
	var scratch [datetimeStringLen]byte
	return printRendered(w, dt.appendTo(scratch[:0]), level, spacesPerLevel)
}

// Print writes the span to w like Date.Print.
func (i Interval) Print(w io.Writer, level, spacesPerLevel int) error {
	var scratch [32]byte
	return printRendered(w, i.appendTo(scratch[:0]), level, spacesPerLevel)
}
