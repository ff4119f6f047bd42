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

package test_integration

import (
	"math/rand"
	"sort"

	"github.com/neo4j/datetime-go/datetime"
	"github.com/neo4j/datetime-go/datetime/bstream"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Datetime", func() {
	const numberOfRandomValues = 200

	// Values drawn away from the calendar edges so that the shifts the
	// laws below apply stay in range.
	randomDatetime := func() datetime.Datetime {
		return datetime.DatetimeOf(
			rand.Intn(8000)+1000,
			rand.Intn(12)+1,
			rand.Intn(28)+1,
			rand.Intn(24),
			rand.Intn(60),
			rand.Intn(60),
			rand.Intn(1000))
	}

	randomInterval := func() datetime.Interval {
		return datetime.IntervalOf(
			int64(rand.Intn(100)-50),
			int64(rand.Intn(48)-24),
			int64(rand.Intn(120)-60),
			int64(rand.Intn(120)-60),
			int64(rand.Intn(2000)-1000))
	}

	Context("default value", func() {
		It("holds the reserved time of day on the first supported date", func() {
			var dt datetime.Datetime
			Expect(dt.Year()).To(Equal(1))
			Expect(dt.Month()).To(Equal(1))
			Expect(dt.Day()).To(Equal(1))
			Expect(dt.Hour()).To(Equal(24))
			Expect(dt.String()).To(Equal("01JAN0001_24:00:00.000"))
		})

		It("enters every computation as midnight", func() {
			var shifted datetime.Datetime
			shifted.AddHours(0)
			Expect(shifted).To(Equal(datetime.DatetimeOf(1, 1, 1)))

			var diffed datetime.Datetime
			Expect(datetime.DatetimeOf(1, 1, 2).Diff(diffed)).
				To(Equal(datetime.IntervalOf(1, 0, 0, 0, 0)))

			var set datetime.Datetime
			set.SetMinute(30)
			Expect(set).To(Equal(datetime.DatetimeOf(1, 1, 1, 0, 30)))
		})

		It("never pairs its time of day with another date", func() {
			Expect(datetime.ValidDatetime(1, 1, 1, 24)).To(BeTrue())
			Expect(datetime.ValidDatetime(1, 1, 2, 24)).To(BeFalse())
			Expect(func() {
				datetime.Combine(datetime.DateOf(2013, 1, 6), datetime.Time{})
			}).To(Panic())
			Expect(func() {
				dt := datetime.DatetimeOf(2013, 1, 6)
				dt.SetHour(24)
			}).To(Panic())
		})

		It("comes back only through assignment or SetHour(24)", func() {
			dt := datetime.FromDate(datetime.Date{})
			Expect(dt).NotTo(Equal(datetime.Datetime{}))
			dt.SetHour(24)
			Expect(dt).To(Equal(datetime.Datetime{}))
		})
	})

	Context("arithmetic", func() {
		It("carries field shifts across midnight", func() {
			dt := datetime.DatetimeOf(2013, 1, 6, 20, 43)
			dt.AddHours(6)
			dt.AddSeconds(9)
			Expect(dt).To(Equal(datetime.DatetimeOf(2013, 1, 7, 2, 43, 9)))
			dt.AddDays(10)
			Expect(dt).To(Equal(datetime.DatetimeOf(2013, 1, 17, 2, 43, 9)))
		})

		It("treats 240 hours and 10 days alike", func() {
			hours := datetime.DatetimeOf(2013, 1, 6, 20, 43)
			hours.AddHours(240)
			days := datetime.DatetimeOf(2013, 1, 6, 20, 43)
			days.AddDays(10)
			Expect(hours).To(Equal(days))
			Expect(datetime.IntervalOf(0, 240, 0, 0, 0)).
				To(Equal(datetime.IntervalOf(10, 0, 0, 0, 0)))
		})

		It("inverts differences", func() {
			for i := 0; i < numberOfRandomValues; i++ {
				a := randomDatetime()
				b := randomDatetime()
				Expect(b.Add(a.Diff(b))).To(Equal(a))
				Expect(a.Diff(b)).To(Equal(b.Diff(a).Negated()))
			}
		})

		It("associates interval shifts", func() {
			for i := 0; i < numberOfRandomValues; i++ {
				a := randomDatetime()
				x := randomInterval()
				y := randomInterval()
				Expect(a.Add(x).Add(y)).To(Equal(a.Add(x.Add(y))))
				Expect(a.Add(x).Sub(x)).To(Equal(a))
				Expect(a.Add(x).Diff(a)).To(Equal(x))
			}
		})

		It("agrees between field shifts and interval shifts", func() {
			for i := 0; i < numberOfRandomValues; i++ {
				a := randomDatetime()
				span := randomInterval()

				byFields := a
				byFields.AddMilliseconds(span.TotalMilliseconds())
				Expect(a.Add(span)).To(Equal(byFields))
			}
		})
	})

	Context("ordering", func() {
		It("orders values by date then time of day", func() {
			values := []datetime.Datetime{
				datetime.DatetimeOf(2013, 1, 6, 20, 43),
				datetime.DatetimeOf(2013, 1, 6, 20, 43, 0, 1),
				datetime.DatetimeOf(2013, 1, 7),
				datetime.DatetimeOf(2012, 12, 31, 23, 59, 59, 999),
				datetime.DatetimeOf(1, 1, 1),
				datetime.DatetimeOf(9999, 12, 31, 23, 59, 59, 999),
			}
			sort.Slice(values, func(i, j int) bool {
				return values[i].Before(values[j])
			})
			for i := 1; i < len(values); i++ {
				Expect(values[i-1].Before(values[i])).To(BeTrue())
				Expect(values[i].After(values[i-1])).To(BeTrue())
				Expect(values[i-1].Compare(values[i])).To(Equal(-1))
				Expect(values[i].Compare(values[i-1])).To(Equal(1))
			}
		})

		It("keeps comparison consistent across random values", func() {
			for i := 0; i < numberOfRandomValues; i++ {
				a := randomDatetime()
				b := randomDatetime()
				switch a.Compare(b) {
				case -1:
					Expect(a.Before(b)).To(BeTrue())
					Expect(b.After(a)).To(BeTrue())
					Expect(a.Equal(b)).To(BeFalse())
				case 1:
					Expect(a.After(b)).To(BeTrue())
					Expect(b.Before(a)).To(BeTrue())
					Expect(a.Equal(b)).To(BeFalse())
				default:
					Expect(a.Equal(b)).To(BeTrue())
				}
			}
		})
	})

	Context("externalization", func() {
		It("advertises version 1 as the most recent format", func() {
			Expect(datetime.MaxStreamVersion(0)).To(Equal(1))
		})

		It("round-trips every sampled value in version 1", func() {
			values := []datetime.Datetime{
				{},
				datetime.DatetimeOf(1, 1, 1),
				datetime.DatetimeOf(9999, 12, 31, 23, 59, 59, 999),
			}
			for i := 0; i < numberOfRandomValues; i++ {
				values = append(values, randomDatetime())
			}
			for _, value := range values {
				out := bstream.NewOutStream()
				value.StreamOut(out, 1)
				Expect(out.Err()).To(BeNil())
				Expect(out.Len()).To(Equal(8))

				var read datetime.Datetime
				in := bstream.NewInStream(out.Bytes())
				read.StreamIn(in, 1)
				Expect(in.Err()).To(BeNil())
				Expect(read).To(Equal(value))
			}
		})

		It("rejects bytes pairing the reserved time of day with another date", func() {
			data := []byte{0x00, 0x00, 0x00, 0x05, 0x05, 0x26, 0x5c, 0x00}
			in := bstream.NewInStream(data)
			dt := datetime.DatetimeOf(2013, 1, 6, 20, 43)
			dt.StreamIn(in, 1)
			Expect(in.Valid()).To(BeFalse())
			Expect(in.Err().Error()).To(ContainSubstring("reserved time of day"))
			Expect(dt).To(Equal(datetime.DatetimeOf(2013, 1, 6, 20, 43)))
		})

		It("leaves the target alone on failure", func() {
			original := datetime.DatetimeOf(2013, 1, 6, 20, 43)

			truncated := bstream.NewInStream([]byte{0x00, 0x0b, 0x36})
			dt := original
			dt.StreamIn(truncated, 1)
			Expect(truncated.Valid()).To(BeFalse())
			Expect(dt).To(Equal(original))

			wrongVersion := bstream.NewInStream(make([]byte, 8))
			dt = original
			dt.StreamIn(wrongVersion, 2)
			Expect(wrongVersion.Valid()).To(BeFalse())
			Expect(dt).To(Equal(original))
		})
	})

	Context("validity", func() {
		It("agrees with the constructors", func() {
			for i := 0; i < numberOfRandomValues; i++ {
				year := rand.Intn(10002) - 1
				month := rand.Intn(15) - 1
				day := rand.Intn(35) - 1
				hour := rand.Intn(27) - 1
				minute := rand.Intn(62) - 1
				second := rand.Intn(62) - 1
				millisecond := rand.Intn(1002) - 1

				_, err := datetime.NewDatetime(year, month, day, hour, minute, second, millisecond)
				if datetime.ValidDatetime(year, month, day, hour, minute, second, millisecond) {
					Expect(err).To(BeNil())
				} else {
					Expect(err).To(HaveOccurred())
				}
			}
		})
	})
})
