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

import "fmt"

// TruncatedError is recorded when a read needs more bytes than the
// stream's buffer has left.
type TruncatedError struct {
	Need int
	Have int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("Stream truncated: needed %d byte(s) but only %d left", e.Need, e.Have)
}

// UnsupportedVersionError is recorded when a value is asked to
// externalize itself in a format version it does not implement.
type UnsupportedVersionError struct {
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("Unsupported externalization format version %d", e.Version)
}

// InvalidatedError is recorded when a stream is invalidated without a
// more specific cause.
type InvalidatedError struct{}

func (e *InvalidatedError) Error() string {
	return "Stream has been invalidated"
}
