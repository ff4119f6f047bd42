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
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/neo4j/datetime-go/datetime/internal/testutil"
)

type stringTestCase[T interface{ String() string }] struct {
	input  T
	output string
}

func (c stringTestCase[T]) test(t *testing.T) {
	if c.input.String() != c.output {
		t.Errorf("Expected %s but was %s", c.output, c.input.String())
	}
	if fmt.Sprint(c.input) != c.output {
		t.Errorf("Expected %s but was %s", c.output, fmt.Sprint(c.input))
	}
}

func TestDateString(outer *testing.T) {
	outer.Parallel()
	testCases := []stringTestCase[Date]{
		{input: Date{}, output: "01JAN0001"},
		{input: DateOf(2013, 1, 6), output: "06JAN2013"},
		{input: DateOf(2000, 2, 29), output: "29FEB2000"},
		{input: DateOf(1999, 12, 31), output: "31DEC1999"},
		{input: DateOf(9999, 12, 31), output: "31DEC9999"},
		{input: DateOf(2013, 4, 1), output: "01APR2013"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		outer.Run(testCase.output, func(inner *testing.T) {
			inner.Parallel()
			testCase.test(inner)
		})
	}
}

func TestTimeString(outer *testing.T) {
	outer.Parallel()
	testCases := []stringTestCase[Time]{
		{input: Time{}, output: "24:00:00.000"},
		{input: TimeOf(0), output: "00:00:00.000"},
		{input: TimeOf(20, 43), output: "20:43:00.000"},
		{input: TimeOf(23, 59, 59, 999), output: "23:59:59.999"},
		{input: TimeOf(5, 6, 7, 8), output: "05:06:07.008"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		outer.Run(testCase.output, func(inner *testing.T) {
			inner.Parallel()
			testCase.test(inner)
		})
	}
}

func TestDatetimeString(outer *testing.T) {
	outer.Parallel()
	testCases := []stringTestCase[Datetime]{
		{input: Datetime{}, output: "01JAN0001_24:00:00.000"},
		{input: DatetimeOf(2013, 1, 6, 20, 43), output: "06JAN2013_20:43:00.000"},
		{input: DatetimeOf(1, 1, 1), output: "01JAN0001_00:00:00.000"},
		{input: DatetimeOf(9999, 12, 31, 23, 59, 59, 999), output: "31DEC9999_23:59:59.999"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		outer.Run(testCase.output, func(inner *testing.T) {
			inner.Parallel()
			testCase.test(inner)
		})
	}
}

func TestIntervalString(outer *testing.T) {
	outer.Parallel()
	testCases := []stringTestCase[Interval]{
		{input: Interval{}, output: "+0_00:00:00.000"},
		{input: IntervalOf(0, 6, 0, 9, 0), output: "+0_06:00:09.000"},
		{input: IntervalOf(10, 6, 0, 9, 0), output: "+10_06:00:09.000"},
		{input: IntervalOf(0, 0, 0, 0, -1500), output: "-0_00:00:01.500"},
		{input: IntervalOf(-12, -23, 0, 0, -500), output: "-12_23:00:00.500"},
		{input: IntervalOf(3652058, 23, 59, 59, 999), output: "+3652058_23:59:59.999"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		outer.Run(testCase.output, func(inner *testing.T) {
			inner.Parallel()
			testCase.test(inner)
		})
	}
}

func TestPrintToBuffer(t *testing.T) {
	dt := DatetimeOf(2013, 1, 6, 20, 43)

	buf := make([]byte, 32)
	n := dt.PrintToBuffer(buf)
	testutil.AssertIntEqual(t, n, 22)
	testutil.AssertStringEqual(t, string(buf[:n]), "06JAN2013_20:43:00.000")

	// A short buffer holds a prefix; the return value still reports the
	// full rendering length.
	short := make([]byte, 9)
	n = dt.PrintToBuffer(short)
	testutil.AssertIntEqual(t, n, 22)
	testutil.AssertStringEqual(t, string(short), "06JAN2013")

	n = dt.PrintToBuffer(nil)
	testutil.AssertIntEqual(t, n, 22)

	n = DateOf(2013, 1, 6).PrintToBuffer(buf)
	testutil.AssertIntEqual(t, n, 9)
	testutil.AssertStringEqual(t, string(buf[:n]), "06JAN2013")

	n = TimeOf(20, 43).PrintToBuffer(buf)
	testutil.AssertIntEqual(t, n, 12)
	testutil.AssertStringEqual(t, string(buf[:n]), "20:43:00.000")

	n = IntervalOf(0, 6, 0, 9, 0).PrintToBuffer(buf)
	testutil.AssertIntEqual(t, n, 15)
	testutil.AssertStringEqual(t, string(buf[:n]), "+0_06:00:09.000")
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	testutil.AssertNoError(t, DatetimeOf(2013, 1, 6, 20, 43).Print(&out, 1, 4))
	testutil.AssertStringEqual(t, out.String(), "    06JAN2013_20:43:00.000\n")

	out.Reset()
	testutil.AssertNoError(t, DatetimeOf(2013, 1, 6, 20, 43).Print(&out, 0, 4))
	testutil.AssertStringEqual(t, out.String(), "06JAN2013_20:43:00.000\n")

	out.Reset()
	testutil.AssertNoError(t, DatetimeOf(2013, 1, 6, 20, 43).Print(&out, 2, -1))
	testutil.AssertStringEqual(t, out.String(), "06JAN2013_20:43:00.000")

	out.Reset()
	testutil.AssertNoError(t, DateOf(2013, 1, 6).Print(&out, 2, 2))
	testutil.AssertStringEqual(t, out.String(), "    06JAN2013\n")

	out.Reset()
	testutil.AssertNoError(t, TimeOf(20, 43).Print(&out, 0, -1))
	testutil.AssertStringEqual(t, out.String(), "20:43:00.000")

	out.Reset()
	testutil.AssertNoError(t, IntervalOf(0, 6, 0, 9, 0).Print(&out, 0, 0))
	testutil.AssertStringEqual(t, out.String(), "+0_06:00:09.000\n")
}

type failingWriter struct{}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken writer")
}

func TestPrintPropagatesWriterError(t *testing.T) {
	err := DatetimeOf(2013, 1, 6, 20, 43).Print(&failingWriter{}, 0, 4)
	testutil.AssertError(t, err)
	testutil.AssertStringContain(t, err.Error(), "broken writer")
}

func BenchmarkDatetimeString(b *testing.B) {
	dt := DatetimeOf(2013, 1, 6, 20, 43)
	for i := 0; i < b.N; i++ {
		_ = dt.String()
	}
}

func BenchmarkDatetimePrintToBuffer(b *testing.B) {
	dt := DatetimeOf(2013, 1, 6, 20, 43)
	var buf [32]byte
	for i := 0; i < b.N; i++ {
		dt.PrintToBuffer(buf[:])
	}
}
