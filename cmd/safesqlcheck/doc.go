// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command safesqlcheck enforces and audits the safesql trust boundary.
//
// The type system guarantees that only constants and explicitly asserted
// text become a safesql.TrustedSQL, but it cannot stop code from going
// around the package entirely by calling database/sql with a plain string,
// and it cannot review the assertions themselves. This command covers both
// gaps so the discipline holds across a whole codebase. It is meant to run
// in CI. Under the hood it uses the go/analysis framework
// (https://pkg.go.dev/golang.org/x/tools/go/analysis) and is built as a
// standard multichecker.
//
// Two analyzers are run:
//
//   - rawsql reports calls to query execution APIs that take SQL as a plain
//     string. database/sql's DB, Tx and Conn query methods are covered by
//     default; wrappers from other libraries can be added via config.
//   - trustaudit reports every call to safesql.AssertSafe and to the
//     unchecked and legacy conversion functions, producing the complete list
//     of places where safety rests on a programmer's word.
//
// # Usage
//
// Both analyzers accept the standard go/analysis flags plus an optional
// -configs flag naming JSON files with additional rules and exemptions
// (see the config package for the format):
//
//	$ safesqlcheck -rawsql.configs=bans.json -trustaudit.configs=vetted.json ./...
//	storage/users.go:42:12: raw SQL API "(*database/sql.DB).Query": the query
//	string can carry attacker-controlled text; accept a safesql.TrustedSQL instead
//
// Note: config files are applied independently, so an identifier banned by
// one file and restated by another still produces the first file's
// diagnostic unless the restating rule carries a matching exemption.
package main
