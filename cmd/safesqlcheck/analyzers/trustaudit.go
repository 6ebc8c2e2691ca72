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

package analyzers

import (
	"github.com/google/go-safesql/cmd/safesqlcheck/config"
	"golang.org/x/tools/go/analysis"
)

// NewTrustAuditAnalyzer returns an analyzer that reports every call site
// where text is promoted to safesql.TrustedSQL by programmer assertion
// rather than by the compiler.
//
// These call sites are where the trust boundary is crossed on the
// programmer's word alone, so they are exactly the lines a security review
// has to read. Packages whose assertions have been vetted can be exempted
// through config files to keep CI output actionable.
func NewTrustAuditAnalyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:  "trustaudit",
		Doc:   "reports call sites that assert SQL text to be trusted",
		Run:   checkTrustAssertions,
		Flags: newFlags(),
	}
}

// assertionAPIs lists this module's functions that promote plain text on the
// caller's authority.
func assertionAPIs() []config.Rule {
	return []config.Rule{
		{
			Name: "github.com/google/go-safesql.AssertSafe",
			Msg:  "verify this call site cannot receive attacker-controlled text",
		},
		{
			Name: "github.com/google/go-safesql/uncheckedconversions.TrustedSQLFromStringKnownToSatisfyTypeContract",
			Msg:  "verify the string's storage is programmer-controlled",
		},
		{
			Name: "github.com/google/go-safesql/legacyconversions.RiskilyAssumeTrustedSQL",
			Msg:  "migration-only API, remove once the call path is converted",
		},
	}
}

func checkTrustAssertions(pass *analysis.Pass) (interface{}, error) {
	cfg, err := configFromFlags(pass)
	if err != nil {
		return nil, err
	}

	fns := config.RuleMap(append(assertionAPIs(), cfg.Functions...))
	if err := checkFunctions(pass, fns, "SQL trust assertion"); err != nil {
		return nil, err
	}
	if err := checkImports(pass, config.RuleMap(cfg.Imports), "SQL trust assertion import"); err != nil {
		return nil, err
	}
	return nil, nil
}
