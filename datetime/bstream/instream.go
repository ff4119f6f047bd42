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

package bstream

import "encoding/binary"

// InStream consumes a buffer produced by an OutStream. Reads past the
// end of the buffer invalidate the stream with a TruncatedError and
// return zero; a failed stream returns zero from every read and never
// advances.
type InStream struct {
	data []byte
	pos  int
	err  error
}

func NewInStream(data []byte) *InStream {
	return &InStream{data: data}
}

// Valid reports whether the stream is still usable.
func (s *InStream) Valid() bool {
	return s.err == nil
}

// Err returns the failure that invalidated the stream, or nil.
func (s *InStream) Err() error {
	return s.err
}

// Invalidate puts the stream in the failed state without a specific
// cause. An already failed stream keeps its first failure.
func (s *InStream) Invalidate() {
	if s.err == nil {
		s.err = &InvalidatedError{}
	}
}

// InvalidateWith puts the stream in the failed state, recording err as
// the cause unless an earlier failure is already recorded.
func (s *InStream) InvalidateWith(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Remaining returns the number of unread bytes.
func (s *InStream) Remaining() int {
	return len(s.data) - s.pos
}

func (s *InStream) take(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.pos+n > len(s.data) {
		s.err = &TruncatedError{Need: n, Have: len(s.data) - s.pos}
		return nil
	}
	b := s.data[s.pos : s.pos+n]
	s.pos += n
	return b
}

func (s *InStream) ReadUint8() uint8 {
	b := s.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (s *InStream) ReadInt8() int8 {
	return int8(s.ReadUint8())
}

func (s *InStream) ReadInt32() int32 {
	b := s.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b))
}

func (s *InStream) ReadInt64() int64 {
	b := s.take(8)
	if b == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}
