package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hpcbench/internal/imb"
)

func sampleTable() TableValues {
	return NewTable(
		"xsbench",
		[]string{"NUMPE", "NThread", "Average Lookups/s", "Total Lookups/s"},
		[][]string{
			{"1", "32", "6172839", "12345678"},
			{"2", "32", "6000000", "24000000"},
		},
	)
}

func TestCreateTextReport(t *testing.T) {
	out, err := Create(FormatTxt, []TableValues{sampleTable()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	text := string(out)
	for _, want := range []string{"xsbench\n=======", "NUMPE", "12345678", "24000000"} {
		if !strings.Contains(text, want) {
			t.Errorf("text report missing %q:\n%s", want, text)
		}
	}
}

func TestCreateTextReportNoData(t *testing.T) {
	table := TableValues{Name: "pennant", NoDataFound: "No runs completed."}
	out, err := Create(FormatTxt, []TableValues{table})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.Contains(string(out), "No runs completed.") {
		t.Errorf("text report missing no-data message:\n%s", out)
	}
}

func TestCreateCsvReport(t *testing.T) {
	out, err := Create(FormatCsv, []TableValues{sampleTable()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if lines[0] != "## xsbench" {
		t.Errorf("first line = %q, want table name comment", lines[0])
	}
	if lines[1] != "NUMPE,NThread,Average Lookups/s,Total Lookups/s" {
		t.Errorf("header line = %q", lines[1])
	}
	if len(lines) != 4 {
		t.Errorf("got %d lines, want 4", len(lines))
	}
}

func TestCreateYamlReport(t *testing.T) {
	out, err := Create(FormatYaml, []TableValues{sampleTable()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	text := string(out)
	for _, want := range []string{"name: xsbench", "columns:", "rows:", `"12345678"`} {
		if !strings.Contains(text, want) {
			t.Errorf("yaml report missing %q:\n%s", want, text)
		}
	}
}

func TestCreateXlsxReport(t *testing.T) {
	out, err := Create(FormatXlsx, []TableValues{sampleTable()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(out) == 0 {
		t.Error("xlsx report is empty")
	}
}

func TestCreateRejectsRaggedTable(t *testing.T) {
	table := TableValues{
		Name: "broken",
		Fields: []Field{
			{Name: "a", Values: []string{"1", "2"}},
			{Name: "b", Values: []string{"1"}},
		},
	}
	if _, err := Create(FormatTxt, []TableValues{table}); err == nil {
		t.Error("Create accepted a table with ragged fields")
	}
}

func TestWriteReports(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteReports(dir, "benchmark_report", []string{FormatAll}, []TableValues{sampleTable()})
	if err != nil {
		t.Fatalf("WriteReports failed: %v", err)
	}
	if len(paths) != len(FormatOptions) {
		t.Fatalf("wrote %d reports, want %d", len(paths), len(FormatOptions))
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing report %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("report %s is empty", path)
		}
	}
}

func TestIMBTables(t *testing.T) {
	numt := 2
	winsize := 64
	run := &imb.Run{
		Label: imb.Label{Name: "IMB-NBC", Processes: 4, Generation: 1},
		Records: []imb.Record{
			{
				Name:       "Ibcast",
				Processes:  4,
				Threads:    &numt,
				WindowSize: &winsize,
				Mode:       "NON-BLOCKING",
				Metrics:    []string{"#bytes", "t_ovrl[usec]"},
				Stats:      [][]string{{"0", "2.04"}},
			},
		},
	}
	tables := IMBTables(run)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	want := "Ibcast numpe=4 numt=2 window_size=64 mode=NON-BLOCKING"
	if tables[0].Name != want {
		t.Errorf("table name = %q, want %q", tables[0].Name, want)
	}
	if len(tables[0].Fields) != 2 || len(tables[0].Fields[0].Values) != 1 {
		t.Errorf("unexpected table shape: %+v", tables[0])
	}
}

func TestWriteIMBAssets(t *testing.T) {
	dir := t.TempDir()
	run := &imb.Run{
		Label: imb.Label{Name: "IMB-MPI1", Processes: 2, Generation: 3},
		Records: []imb.Record{
			{
				Name:      "PingPong",
				Processes: 2,
				Mode:      "NBC",
				Metrics:   []string{"#bytes", "t_avg[usec]"},
				Stats:     [][]string{{"0", "1.23"}, {"1000", "4.56"}},
			},
		},
	}
	if err := WriteIMBAssets(dir, run); err != nil {
		t.Fatalf("WriteIMBAssets failed: %v", err)
	}
	path := filepath.Join(dir, "IMB-MPI1", "numpe-2", "runid-3", "PingPong-2PE-nbc.csv")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("missing asset: %v", err)
	}
	want := "##mode,NBC\n#bytes,t_avg[usec]\n0,1.23\n1000,4.56\n"
	if string(content) != want {
		t.Errorf("asset content = %q, want %q", content, want)
	}
}
