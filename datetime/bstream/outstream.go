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

// Package bstream provides byte-oriented externalization streams. The
// encoded bytes carry no type tags, no length prefixes and no format
// version; callers negotiate and store the version out of band and
// hand it to the values being externalized. Integers are big-endian
// and fixed width.
//
// Streams fail sticky: the first failure invalidates the stream, every
// later operation is a no-op and Err keeps reporting that first
// failure.
package bstream

import "encoding/binary"

// OutStream accumulates externalized values in memory.
type OutStream struct {
	buf []byte
	err error
}

func NewOutStream() *OutStream {
	return &OutStream{buf: make([]byte, 0, 16)}
}

// Valid reports whether the stream is still usable.
func (s *OutStream) Valid() bool {
	return s.err == nil
}

// Err returns the failure that invalidated the stream, or nil.
func (s *OutStream) Err() error {
	return s.err
}

// Invalidate puts the stream in the failed state without a specific
// cause. An already failed stream keeps its first failure.
func (s *OutStream) Invalidate() {
	if s.err == nil {
		s.err = &InvalidatedError{}
	}
}

// InvalidateWith puts the stream in the failed state, recording err as
// the cause unless an earlier failure is already recorded.
func (s *OutStream) InvalidateWith(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Len returns the number of bytes written so far.
func (s *OutStream) Len() int {
	return len(s.buf)
}

// Bytes returns the accumulated buffer. The slice stays valid until
// the next write or Reset.
func (s *OutStream) Bytes() []byte {
	return s.buf
}

// Reset empties the buffer and clears any recorded failure, keeping
// the allocated storage for reuse.
func (s *OutStream) Reset() {
	s.buf = s.buf[:0]
	s.err = nil
}

func (s *OutStream) WriteUint8(v uint8) {
	if s.err != nil {
		return
	}
	s.buf = append(s.buf, v)
}

func (s *OutStream) WriteInt8(v int8) {
	s.WriteUint8(uint8(v))
}

func (s *OutStream) WriteInt32(v int32) {
	if s.err != nil {
		return
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	s.buf = append(s.buf, b[:]...)
}

func (s *OutStream) WriteInt64(v int64) {
	if s.err != nil {
		return
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	s.buf = append(s.buf, b[:]...)
}
