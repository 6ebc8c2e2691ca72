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

// Package analyzers implements the two analyzers run by safesqlcheck.
package analyzers

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/google/go-safesql/cmd/safesqlcheck/config"
	"golang.org/x/tools/go/analysis"
)

// newFlags returns the flag set shared by both analyzers. Config files are
// optional: each analyzer ships built-in rules and the files only add rules
// or exemptions on top of them.
func newFlags() flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.String("configs", "", "comma-separated config files with additional rules and exemptions")
	return *fs
}

// configFromFlags reads the config files named by the analyzer's -configs
// flag, returning an empty config when the flag is unset.
func configFromFlags(pass *analysis.Pass) (*config.Config, error) {
	cfgFiles := pass.Analyzer.Flags.Lookup("configs").Value.String()
	if cfgFiles == "" {
		return &config.Config{}, nil
	}
	return config.Read(strings.Split(cfgFiles, ","))
}

// checkFunctions reports every use of a function named in rules, unless the
// package under analysis is exempted.
func checkFunctions(pass *analysis.Pass, rules map[string][]config.Rule, verb string) error {
	for id, obj := range pass.TypesInfo.Uses {
		fn, ok := obj.(*types.Func)
		if !ok {
			continue
		}
		if err := reportIfMatched(pass, fn.FullName(), rules, id.Pos(), verb); err != nil {
			return err
		}
	}
	return nil
}

// checkImports reports every import of a path named in rules, unless the
// package under analysis is exempted.
func checkImports(pass *analysis.Pass, rules map[string][]config.Rule, verb string) error {
	for _, f := range pass.Files {
		for _, i := range f.Imports {
			importPath := strings.Trim(i.Path.Value, `"`)
			if err := reportIfMatched(pass, importPath, rules, i.Pos(), verb); err != nil {
				return err
			}
		}
	}
	return nil
}

func reportIfMatched(pass *analysis.Pass, name string, rules map[string][]config.Rule, pos token.Pos, verb string) error {
	matched, ok := rules[name]
	if !ok {
		return nil
	}
	exempted, err := pkgExempted(pass.Pkg, matched)
	if err != nil {
		return err
	}
	if exempted {
		return nil
	}
	for _, r := range matched {
		pass.Report(analysis.Diagnostic{
			Pos:     pos,
			Message: fmt.Sprintf("%s %q: %s", verb, name, r.Msg),
		})
	}
	return nil
}

// pkgExempted reports whether the package under analysis matches an
// exemption of any of the given rules. An exemption in one rule silences
// every rule for the same identifier: this lets a config file exempt a
// package from a built-in rule by restating the identifier with an
// exemptions list.
func pkgExempted(pkg *types.Package, rules []config.Rule) (bool, error) {
	for _, r := range rules {
		for _, e := range r.Exemptions {
			match, err := filepath.Match(e.AllowedPkg, pkg.Path())
			if err != nil {
				return false, fmt.Errorf("exemption pattern %q: %w", e.AllowedPkg, err)
			}
			if match {
				return true, nil
			}
		}
	}
	return false, nil
}
