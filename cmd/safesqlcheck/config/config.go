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

// Package config defines the configuration files accepted by safesqlcheck.
//
// A config file is a JSON object with two optional lists:
//
//	{
//		"functions": [
//			{
//				"name": "(*github.com/jmoiron/sqlx.DB).Queryx",
//				"msg": "use the safesql wrappers instead",
//				"exemptions": [
//					{
//						"justification": "vetted by the storage team",
//						"allowedPkg": "mycompany.com/storage/..."
//					}
//				]
//			}
//		],
//		"imports": [
//			{
//				"name": "github.com/google/go-safesql/legacyconversions",
//				"msg": "new code must not use legacy conversions"
//			}
//		]
//	}
//
// Function names are fully qualified: package path and function name for
// package-level functions, and the types.Func.FullName form, e.g.
// "(*database/sql.DB).Query", for methods. Exemption patterns are matched
// against the package path under analysis with filepath.Match semantics.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Rule bans or audits one fully qualified function or import path.
type Rule struct {
	Name       string      `json:"name"` // fully qualified identifier name
	Msg        string      `json:"msg"`  // additional information, e.g. rationale or a migration hint
	Exemptions []Exemption `json:"exemptions"`
}

// Exemption silences a Rule for the packages matching AllowedPkg.
type Exemption struct {
	Justification string `json:"justification"`
	AllowedPkg    string `json:"allowedPkg"`
}

// Config is the merged contents of all config files passed to the checker.
type Config struct {
	Functions []Rule `json:"functions"`
	Imports   []Rule `json:"imports"`
}

// Read reads and merges the given config files.
func Read(files []string) (*Config, error) {
	merged := &Config{}
	for _, file := range files {
		cfg, err := readFile(file)
		if err != nil {
			return nil, err
		}
		merged.Functions = append(merged.Functions, cfg.Functions...)
		merged.Imports = append(merged.Imports, cfg.Imports...)
	}
	return merged, nil
}

// RuleMap builds a mapping of fully qualified identifier name to all Rule
// entries that mention it. Multiple configs may target the same identifier:
// each produces its own diagnostic, and each exempts packages independently.
func RuleMap(rules []Rule) map[string][]Rule {
	m := make(map[string][]Rule)
	for _, r := range rules {
		m[r.Name] = append(m[r.Name], r)
	}
	return m
}

func readFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", filename, err)
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", filename, err)
	}
	return &cfg, nil
}
