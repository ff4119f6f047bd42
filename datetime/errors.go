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

import "fmt"

// InvalidValueError is returned by the checked constructors and
// setters, and recorded on a stream when externalized bytes decode to
// a value outside its domain.
type InvalidValueError struct {
	msg string
}

func (e *InvalidValueError) Error() string {
	return e.msg
}

func newInvalidValueError(format string, args ...interface{}) *InvalidValueError {
	return &InvalidValueError{msg: fmt.Sprintf(format, args...)}
}
