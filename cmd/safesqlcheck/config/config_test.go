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

package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestRead(t *testing.T) {
	tests := []struct {
		desc   string            // describes the test case
		files  map[string]string // fake workspace files
		config *Config           // the expected config
	}{
		{
			desc: "file with empty definitions",
			files: map[string]string{
				"file.json": `
				{}
				`,
			},
			config: &Config{},
		},
		{
			desc: "file with unknown field",
			files: map[string]string{
				"file.json": `
				{
					"unknown": 1
				}
				`,
			},
			config: &Config{},
		},
		{
			desc: "file with banned import",
			files: map[string]string{
				"file.json": `
				{
					"imports": [{
						"name": "github.com/google/go-safesql/legacyconversions",
						"msg": "Sample message",
						"exemptions": [{
							"justification": "My justification",
							"allowedPkg": "mycompany.com/vetted/*"
						}]
					}]
				}
				`,
			},
			config: &Config{
				Imports: []Rule{
					{
						Name: "github.com/google/go-safesql/legacyconversions",
						Msg:  "Sample message",
						Exemptions: []Exemption{
							{
								Justification: "My justification",
								AllowedPkg:    "mycompany.com/vetted/*",
							},
						},
					},
				},
			},
		},
		{
			desc: "file with banned function",
			files: map[string]string{
				"file.json": `
				{
					"functions": [{
						"name": "(*github.com/jmoiron/sqlx.DB).Queryx",
						"msg": "Sample message"
					}]
				}
				`,
			},
			config: &Config{
				Functions: []Rule{
					{
						Name: "(*github.com/jmoiron/sqlx.DB).Queryx",
						Msg:  "Sample message",
					},
				},
			},
		},
		{
			desc: "multiple files are merged",
			files: map[string]string{
				"file1.json": `
				{
					"functions": [{
						"name": "function1"
					}],
					"imports": [{
						"name": "import1"
					}]
				}
				`,
				"file2.json": `
				{
					"functions": [{
						"name": "function2"
					}],
					"imports": [{
						"name": "import2"
					}]
				}
				`,
			},
			config: &Config{
				Imports: []Rule{
					{Name: "import1"},
					{Name: "import2"},
				},
				Functions: []Rule{
					{Name: "function1"},
					{Name: "function2"},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			dir, cleanup, err := analysistest.WriteFiles(test.files)
			if err != nil {
				t.Fatalf("WriteFiles() returned err: %v", err)
			}
			defer cleanup()
			files := make([]string, 0, len(test.files))
			for f := range test.files {
				files = append(files, filepath.Join(dir, "src", f))
			}

			got, err := Read(files)
			if err != nil {
				t.Fatalf("Read() got err: %v want: nil", err)
			}
			less := func(a, b Rule) bool { return a.Name < b.Name }
			if diff := cmp.Diff(test.config, got, cmpopts.EquateEmpty(), cmpopts.SortSlices(less)); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		desc     string            // describes the test case
		files    map[string]string // fake workspace files
		fileName string            // file name to read
	}{
		{
			desc:     "file does not exist",
			files:    map[string]string{},
			fileName: "nonexistent.json",
		},
		{
			desc: "file has invalid contents",
			files: map[string]string{
				"file.json": `
				{"imports": "not a list"}
				`,
			},
			fileName: "file.json",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			dir, cleanup, err := analysistest.WriteFiles(test.files)
			if err != nil {
				t.Fatalf("WriteFiles() returned err: %v", err)
			}
			defer cleanup()

			if _, err := Read([]string{filepath.Join(dir, "src", test.fileName)}); err == nil {
				t.Error("Read() succeeded, want error")
			}
		})
	}
}

func TestRuleMap(t *testing.T) {
	rules := []Rule{
		{Name: "a", Msg: "first"},
		{Name: "a", Msg: "second"},
		{Name: "b"},
	}
	got := RuleMap(rules)
	want := map[string][]Rule{
		"a": {{Name: "a", Msg: "first"}, {Name: "a", Msg: "second"}},
		"b": {{Name: "b"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RuleMap mismatch (-want +got):\n%s", diff)
	}
}
