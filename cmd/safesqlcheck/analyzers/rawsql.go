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
	"fmt"

	"github.com/google/go-safesql/cmd/safesqlcheck/config"
	"golang.org/x/tools/go/analysis"
)

// NewRawSQLAnalyzer returns an analyzer that reports calls to query
// execution APIs that accept plain strings.
//
// By default it covers the database/sql methods that interpret their string
// argument as SQL. Wrappers in other packages (ORMs, query runners) can be
// added through config files, and packages that are allowed to call the raw
// APIs directly, such as the one adapting them to safesql.TrustedSQL, can be
// exempted the same way.
func NewRawSQLAnalyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:  "rawsql",
		Doc:   "reports query execution APIs that take SQL as a plain string",
		Run:   checkRawSQL,
		Flags: newFlags(),
	}
}

const rawSQLMsg = "the query string can carry attacker-controlled text; accept a safesql.TrustedSQL instead"

// rawQueryAPIs lists the database/sql methods whose string argument is
// executed as SQL.
func rawQueryAPIs() []config.Rule {
	methods := map[string][]string{
		"DB":   {"Exec", "ExecContext", "Prepare", "PrepareContext", "Query", "QueryContext", "QueryRow", "QueryRowContext"},
		"Tx":   {"Exec", "ExecContext", "Prepare", "PrepareContext", "Query", "QueryContext", "QueryRow", "QueryRowContext"},
		"Conn": {"ExecContext", "PrepareContext", "QueryContext", "QueryRowContext"},
	}
	var rules []config.Rule
	for recv, names := range methods {
		for _, name := range names {
			rules = append(rules, config.Rule{
				Name: fmt.Sprintf("(*database/sql.%s).%s", recv, name),
				Msg:  rawSQLMsg,
			})
		}
	}
	return rules
}

func checkRawSQL(pass *analysis.Pass) (interface{}, error) {
	cfg, err := configFromFlags(pass)
	if err != nil {
		return nil, err
	}

	fns := config.RuleMap(append(rawQueryAPIs(), cfg.Functions...))
	if err := checkFunctions(pass, fns, "raw SQL API"); err != nil {
		return nil, err
	}
	if err := checkImports(pass, config.RuleMap(cfg.Imports), "banned import"); err != nil {
		return nil, err
	}
	return nil, nil
}
