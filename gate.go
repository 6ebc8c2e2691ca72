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

package safesql

// stringConstant can only be inhabited by untyped string constants from
// outside this package, since untyped constants are the only strings that
// convert implicitly to an unexported named string type.
type stringConstant string

// New constructs a TrustedSQL from a compile-time constant string.
//
// Since the stringConstant parameter type is unexported, the only way to call
// New from another package is to pass a string literal or an untyped string
// constant. Such text is fixed in the program's source and therefore cannot
// carry external input, so no caller-side assertion is required. The constant
// is referenced, never copied: it is read-only data that lives for the whole
// process.
func New(text stringConstant) TrustedSQL {
	return TrustedSQL{s: string(text), mode: modeStatic}
}

// Text enumerates the runtime text representations that AssertSafe accepts.
type Text interface {
	string | []byte | OwnedBytes
}

// OwnedBytes is a byte slice the caller relinquishes to the trusted value.
//
// Converting an Asserted[OwnedBytes] stores the slice's memory as the
// value's exclusively owned payload without copying it; after conversion the
// caller must not retain or modify the slice. Use a plain []byte instead to
// keep using the buffer, at the price of the resulting value being bounded
// by it.
type OwnedBytes []byte

// Source is the closed set of values that Convert accepts.
//
// It is implemented only by TrustedSQL itself and by the Asserted wrapper;
// the method is unexported, so no further producers can be added from outside
// this package. A plain string or []byte does not satisfy Source, which is
// the entire enforcement mechanism: passing unvetted dynamic text to an API
// that takes a Source or a TrustedSQL is a compile error, not a runtime one.
//
// That guarantee holds for this package as published. A fork that adds an
// implementer forfeits it, which is why the safesqlcheck command also reports
// every conversion call site for review.
type Source interface {
	intoTrustedSQL() TrustedSQL
}

// Asserted marks text whose safety the wrapping caller vouches for.
//
// Using this type means that *you* have made sure the wrapped text does not
// contain a SQL injection vulnerability: if it was constructed dynamically,
// or from user input, you have taken care to validate or sanitize it
// yourself. The conversion machinery trusts the assertion unconditionally and
// never inspects the content.
//
// Note that compile-time constants convert through New directly and never
// need to be wrapped.
type Asserted[T Text] struct {
	text T
}

// AssertSafe wraps text the caller has verified to be safe, making it
// convertible by Convert. The storage mode of the converted value follows
// the wrapped representation:
//
//   - string: stored as-is in shared mode. A Go string is an immutable
//     allocation that may be referenced from any number of goroutines, so
//     taking another reference to it needs no copy.
//   - []byte: viewed in place in borrowed mode, without copying. The value
//     is valid only while the caller leaves the buffer unmodified; call
//     Detach to sever the dependency.
//   - OwnedBytes: viewed in place in exclusively owned mode, without
//     copying. The caller hands the buffer over outright.
func AssertSafe[T Text](text T) Asserted[T] {
	return Asserted[T]{text}
}

func (a Asserted[T]) intoTrustedSQL() TrustedSQL {
	switch text := any(a.text).(type) {
	case string:
		return TrustedSQL{s: text, mode: modeShared}
	case OwnedBytes:
		return TrustedSQL{s: aliasBytes(text), mode: modeOwned}
	case []byte:
		return TrustedSQL{s: aliasBytes(text), mode: modeBorrowed}
	}
	panic("safesql: unreachable: Text admits no other representation")
}

// intoTrustedSQL makes every TrustedSQL its own Source, so functions that
// accept "anything convertible to trusted SQL" also accept an
// already-trusted value directly.
func (t TrustedSQL) intoTrustedSQL() TrustedSQL {
	return t
}

// Convert turns any permitted producer into a TrustedSQL.
//
// It is the single runtime entry point of the conversion protocol: asserted
// text converts according to its representation (see AssertSafe) and an
// already-trusted value converts to itself unchanged. No conversion copies,
// validates or transforms the text, and none can fail.
func Convert(src Source) TrustedSQL {
	return src.intoTrustedSQL()
}
