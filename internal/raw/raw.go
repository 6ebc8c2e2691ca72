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

// Package raw is used to provide a bypass mechanism to implement the
// unchecked and legacy conversions packages.
// This package works as a proxy between safesql and any other "conversions" package.
//
// The way it functions is to expect safesql to provide the unexported constructor for TrustedSQL at init() time.
// Since this package is in internal/ it can only be imported by this module, so it is known at compile time that
// the constructor is not unsafely passed around.
package raw

// TrustedSQL is the constructor for a TrustedSQL to be used by the unchecked and legacy conversions packages.
// This variable will be assigned by the safesql package at init time.
// The reason why this is an empty interface is to avoid a cyclic dependency between safesql and this package.
var TrustedSQL interface{}
