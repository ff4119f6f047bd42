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

// Package testutil contains shared test functionality
package testutil

import (
	"reflect"
	"strings"
	"testing"
)

func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error but was %T: %s", err, err)
	}
}

func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected an error but it wasn't")
	}
}

func AssertTrue(t *testing.T, b bool) {
	t.Helper()
	if !b {
		t.Error("Expected true but was false")
	}
}

func AssertFalse(t *testing.T, b bool) {
	t.Helper()
	if b {
		t.Error("Expected false but was true")
	}
}

func AssertIntEqual(t *testing.T, ai, ei int) {
	t.Helper()
	if ai != ei {
		t.Errorf("%d != %d", ai, ei)
	}
}

func AssertInt64Equal(t *testing.T, ai, ei int64) {
	t.Helper()
	if ai != ei {
		t.Errorf("%d != %d", ai, ei)
	}
}

func AssertStringEqual(t *testing.T, as, es string) {
	t.Helper()
	if as != es {
		t.Errorf("'%s' != '%s'", as, es)
	}
}

func AssertStringContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Errorf("Expected %s to contain %s", s, sub)
	}
}

func AssertDeepEqual(t *testing.T, x, y interface{}) {
	t.Helper()
	if !reflect.DeepEqual(x, y) {
		t.Errorf("Differs %+v vs %+v", x, y)
	}
}

func AssertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Error("Expected a panic but it didn't happen")
		}
	}()
	f()
}

func AssertNotPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Errorf("Expected no panic but got %v", r)
		}
	}()
	f()
}
