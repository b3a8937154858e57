package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hpcbench/internal/imb"
)

// IMBTables converts a parsed IMB run into one report table per record.
func IMBTables(run *imb.Run) []TableValues {
	tables := make([]TableValues, 0, len(run.Records))
	for _, rec := range run.Records {
		tables = append(tables, NewTable(imbTableName(rec), rec.Metrics, rec.Stats))
	}
	return tables
}

func imbTableName(rec imb.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s numpe=%d", rec.Name, rec.Processes)
	if rec.Threads != nil {
		fmt.Fprintf(&sb, " numt=%d", *rec.Threads)
	}
	if rec.WindowSize != nil {
		fmt.Fprintf(&sb, " window_size=%d", *rec.WindowSize)
	}
	if rec.Mode != "" {
		fmt.Fprintf(&sb, " mode=%s", rec.Mode)
	}
	return sb.String()
}

// WriteIMBAssets writes one CSV per record of the run under
// <outputDir>/<label.name>/numpe-<n>/runid-<generation>/. Optional record
// attributes are recorded as "##key,value" prologue rows ahead of the column
// header.
func WriteIMBAssets(outputDir string, run *imb.Run) error {
	dir := filepath.Join(
		outputDir,
		run.Label.Name,
		fmt.Sprintf("numpe-%d", run.Label.Processes),
		fmt.Sprintf("runid-%d", run.Label.Generation),
	)
	if err := os.MkdirAll(dir, 0755); err != nil { // #nosec G301
		return fmt.Errorf("failed to create asset directory: %w", err)
	}
	for _, rec := range run.Records {
		path := filepath.Join(dir, imbAssetName(rec))
		if err := writeIMBRecordCsv(path, rec); err != nil {
			return err
		}
		slog.Debug("wrote benchmark asset", slog.String("path", path))
	}
	return nil
}

func imbAssetName(rec imb.Record) string {
	name := fmt.Sprintf("%s-%dPE", rec.Name, rec.Processes)
	if rec.Mode != "" {
		name += "-" + strings.ToLower(rec.Mode)
	}
	return name + ".csv"
}

func writeIMBRecordCsv(path string, rec imb.Record) error {
	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create asset file: %w", err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	if rec.Threads != nil {
		if err := writer.Write([]string{"##numt", strconv.Itoa(*rec.Threads)}); err != nil {
			return err
		}
	}
	if rec.WindowSize != nil {
		if err := writer.Write([]string{"##window_size", strconv.Itoa(*rec.WindowSize)}); err != nil {
			return err
		}
	}
	if rec.Mode != "" {
		if err := writer.Write([]string{"##mode", rec.Mode}); err != nil {
			return err
		}
	}
	if err := writer.Write(rec.Metrics); err != nil {
		return err
	}
	for _, row := range rec.Stats {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
