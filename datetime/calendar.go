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

// Proleptic Gregorian calendar math over serial day numbers. Serial day
// 0 is 0001-01-01, the first supported day; serial day 3652058 is
// 9999-12-31, the last.

const (
	minYear = 1
	maxYear = 9999

	minSerialDay = 0
	maxSerialDay = 3652058

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

// daysBefore[m] counts the days in a non-leap year before month m+1.
var daysBefore = [13]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func daysInMonth(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return int(daysBefore[month] - daysBefore[month-1])
}

func validYearMonthDay(year, month, day int) bool {
	return year >= minYear && year <= maxYear &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= daysInMonth(year, month)
}

func validYearDay(year, dayOfYear int) bool {
	return year >= minYear && year <= maxYear &&
		dayOfYear >= 1 && dayOfYear <= daysInYear(year)
}

// daysBeforeYear counts the days in all supported years preceding year.
func daysBeforeYear(year int) int32 {
	y := int32(year) - 1
	return y*365 + y/4 - y/100 + y/400
}

func serialOfYearMonthDay(year, month, day int) int32 {
	s := daysBeforeYear(year) + daysBefore[month-1]
	if month > 2 && isLeap(year) {
		s++
	}
	return s + int32(day) - 1
}

func serialOfYearDay(year, dayOfYear int) int32 {
	return daysBeforeYear(year) + int32(dayOfYear) - 1
}

// yearMonthDayOfSerial inverts serialOfYearMonthDay by peeling off
// 400/100/4/1-year cycles. The n -= n >> 2 corrections keep the final
// day of a cycle inside that cycle.
func yearMonthDayOfSerial(serial int32) (year, month, day int) {
	d := serial

	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(y) + 1
	yday := int(d)

	if isLeap(year) {
		switch {
		case yday > 31+29-1:
			// Past the leap day; count as if it wasn't there.
			yday--
		case yday == 31+29-1:
			return year, 2, 29
		}
	}

	// Estimate the month assuming 31-day months; the estimate is low by
	// at most one.
	m := yday / 31
	end := int(daysBefore[m+1])
	var begin int
	if yday >= end {
		m++
		begin = end
	} else {
		begin = int(daysBefore[m])
	}

	return year, m + 1, yday - begin + 1
}

// floorDiv divides rounding toward negative infinity, so that
// n - floorDiv(n, d)*d is always in [0, d) for positive d.
func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
