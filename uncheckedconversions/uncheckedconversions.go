// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uncheckedconversions provides functions to create values of package safesql types from plain strings.
// Uses of these functions could potentially result in instances of safesql types that violate their type contracts, and hence result in security vulnerabilities.
//
// Unlike safesql.AssertSafe, which is meant to appear next to the code that constructs the text it vouches for,
// this package is meant for strings whose safety is a property of where they are stored rather than how they are built.
// It lives in a separate package precisely so that its import can be restricted and audited.
package uncheckedconversions

import (
	"github.com/google/go-safesql"
	"github.com/google/go-safesql/internal/raw"
)

var trustedSQLCtor = raw.TrustedSQL.(func(string) safesql.TrustedSQL)

// TrustedSQLFromStringKnownToSatisfyTypeContract promotes the given string to a trusted SQL string.
// Only strings known to be under the programmer's control should be passed to this function.
//
// One example of correct use of this function would be to promote a query retrieved from a query storage.
// If the query storage is under the programmer's control and user input cannot be put into it, then the string
// is known to satisfy the type contract.
func TrustedSQLFromStringKnownToSatisfyTypeContract(trusted string) safesql.TrustedSQL {
	return trustedSQLCtor(trusted)
}
