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

// Package safesql provides a "safe by construction" SQL string type so that
// code that would accidentally build a query from attacker-controlled text
// does not compile.
//
// The concept of this package is that any API that executes SQL should accept
// a TrustedSQL instead of a plain string. If uncheckedconversions and
// legacyconversions are not used, this package guarantees that only
// compile-time constants and text explicitly vouched for by the programmer
// can ever reach such an API, preventing attacker-controlled strings from
// being accidentally executed. The package performs no escaping, sanitization
// or dialect-specific processing: dynamic data belongs in bind parameters,
// never in the query text itself.
//
// # Obtaining a TrustedSQL
//
// Code like the following is trivial to migrate to a TrustedSQL-only API:
//
//	db.Query("SELECT name FROM users WHERE id = ?", id)
//
// The only change required is to promote the string literal to a trusted
// string:
//
//	db.Query(safesql.New("SELECT name FROM users WHERE id = ?"), id)
//
// New accepts an unexported named string type, so the only way to call it
// from outside this package is to pass an untyped constant. Text fixed in the
// program's source is definitionally free of external input, which is why
// this is the one conversion that requires no caller-side assertion.
//
// Every other source must be wrapped with AssertSafe and passed through
// Convert, which names the caller as the party vouching for the text:
//
//	q := buildQuery() // runtime-assembled, reviewed to be injection-free
//	db.Query(safesql.Convert(safesql.AssertSafe(q)))
//
// Wrapping genuinely unsafe text defeats the protection; the assertion is
// trusted unconditionally and its content is never inspected. The
// safesqlcheck command in this repository reports every assertion call site
// so they can be audited in code review and CI.
//
// For more complicated cases the Concat, Join and Split helpers compose
// already-trusted fragments without reopening the trust boundary.
//
// # Storage modes
//
// A TrustedSQL records how its payload is stored so that conversions never
// copy and so that Detach can tell which values alias caller-owned memory.
// The payload itself is immutable in every mode; only its lifetime differs:
//
//   - static: a compile-time constant, read-only for the whole process.
//   - borrowed: a zero-copy view of a caller-owned []byte, valid only while
//     the origin buffer is left unmodified.
//   - owned: an allocation held exclusively by this value.
//   - shared: a runtime string; Go strings are immutable allocations that
//     are safe to share across goroutines, so no copy is ever needed.
//
// Go has no non-atomically shared string type, so the one producer the
// conversion protocol would have to reject on concurrency grounds is not
// expressible here in the first place.
//
// Equality and hashing are defined purely over payload bytes: two values
// with the same text compare Equal and Hash identically no matter which mode
// backs them. The == operator is intentionally unavailable for TrustedSQL,
// as it would leak the storage mode into comparisons.
package safesql

import (
	"hash/maphash"
	"strconv"
	"strings"
	"unsafe"

	"github.com/google/go-safesql/internal/raw"
)

func init() {
	// Initialize the bypass mechanism for the unchecked and legacy
	// conversions packages. Strings promoted through those packages have no
	// exclusive owner, so they are stored in shared mode.
	raw.TrustedSQL = func(s string) TrustedSQL { return TrustedSQL{s: s, mode: modeShared} }
}

// mode tags how a TrustedSQL payload is stored. The zero value is
// modeStatic so that the zero TrustedSQL is the empty constant query.
type mode uint8

const (
	modeStatic mode = iota
	modeBorrowed
	modeOwned
	modeShared
)

func (m mode) String() string {
	switch m {
	case modeStatic:
		return "static"
	case modeBorrowed:
		return "borrowed"
	case modeOwned:
		return "owned"
	case modeShared:
		return "shared"
	default:
		return "unknown"
	}
}

// TrustedSQL is a SQL string that is known to be free of attacker-controlled
// input and is therefore safe to hand to a query-execution API.
//
// The zero value is the empty query. Values are immutable: once constructed
// the payload can only be read, copied or lifetime-erased, never changed.
//
// TrustedSQL values are not comparable with ==; use Equal, which compares
// payload content regardless of how it is stored.
type TrustedSQL struct {
	_    [0]func() // blocks ==: the mode tag must not take part in equality
	s    string
	mode mode
}

// hashSeed makes Hash stable for the lifetime of the process.
var hashSeed = maphash.MakeSeed()

// String returns the query text. It is O(1) and never allocates.
//
// If the value was converted from an asserted []byte the returned string
// aliases the caller's buffer and remains valid only as long as that buffer
// is not modified; use Detach first to obtain an independent value.
func (t TrustedSQL) String() string {
	return t.s
}

// Detach returns a TrustedSQL that does not alias memory owned by the
// caller. Values converted from an asserted []byte are copied, exactly once,
// into storage owned exclusively by the result; every other value is already
// independent and is returned unchanged, without copying.
func (t TrustedSQL) Detach() TrustedSQL {
	if t.mode != modeBorrowed {
		return t
	}
	return TrustedSQL{s: strings.Clone(t.s), mode: modeOwned}
}

// Equal reports whether t and other hold the same payload bytes. The storage
// mode plays no part: a value built from a constant and a value asserted at
// runtime compare equal whenever their text is identical.
func (t TrustedSQL) Equal(other TrustedSQL) bool {
	return t.s == other.s
}

// Hash returns a hash of the payload bytes, seeded once per process. Values
// that are Equal hash identically regardless of storage mode.
func (t TrustedSQL) Hash() uint64 {
	return maphash.String(hashSeed, t.s)
}

// NewFromUint64 constructs a TrustedSQL holding the decimal representation
// of i. Formatting a uint64 cannot introduce attacker-controlled text.
func NewFromUint64(i uint64) TrustedSQL {
	return TrustedSQL{s: strconv.FormatUint(i, 10), mode: modeOwned}
}

// Concat concatenates the given trusted strings into a new trusted string.
//
// Note: this function should not be abused to assemble arbitrary queries from
// user input, it is just a helper to compose queries at runtime from
// fragments that individually crossed the trust boundary.
func Concat(ss ...TrustedSQL) TrustedSQL {
	return Join(ss, TrustedSQL{})
}

// Join joins the given trusted strings with the given separator the same way
// strings.Join would.
//
// Note: this function should not be abused to assemble arbitrary queries from
// user input, it is just a helper to compose queries at runtime from
// fragments that individually crossed the trust boundary.
func Join(ss []TrustedSQL, sep TrustedSQL) TrustedSQL {
	switch len(ss) {
	case 0:
		return TrustedSQL{}
	case 1:
		// Nothing to join: the input passes through with its storage intact.
		return ss[0]
	}
	parts := make([]string, 0, len(ss))
	for _, s := range ss {
		parts = append(parts, s.s)
	}
	return TrustedSQL{s: strings.Join(parts, sep.s), mode: modeOwned}
}

// Split functions as strings.Split but for TrustedSQL values.
//
// The returned fragments reference the input's storage rather than copies of
// it. A fragment of a borrowed value is bounded by the same origin buffer as
// its parent; a fragment of an exclusively owned value shares that allocation
// with its parent and all sibling fragments, so it is tagged shared.
func Split(s TrustedSQL, sep TrustedSQL) []TrustedSQL {
	m := s.mode
	if m == modeOwned {
		m = modeShared
	}
	spl := strings.Split(s.s, sep.s)
	accum := make([]TrustedSQL, 0, len(spl))
	for _, part := range spl {
		accum = append(accum, TrustedSQL{s: part, mode: m})
	}
	return accum
}

// aliasBytes returns a string header over b without copying. The result is
// valid only as long as b is neither modified nor reused by its owner.
func aliasBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
