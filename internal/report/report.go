package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	FormatTxt  = "txt"
	FormatCsv  = "csv"
	FormatYaml = "yaml"
	FormatXlsx = "xlsx"
	FormatAll  = "all"
)

const noDataFound = "No data found."

var FormatOptions = []string{FormatTxt, FormatCsv, FormatYaml, FormatXlsx}

// Create generates a report in the specified format from the given tables.
// If the format is not supported, the function panics.
func Create(format string, allTableValues []TableValues) (out []byte, err error) {
	// make sure that all fields have the same number of values
	for _, tableValues := range allTableValues {
		if err := validateTableValues(tableValues); err != nil {
			return nil, err
		}
	}
	switch format {
	case FormatTxt:
		return createTextReport(allTableValues)
	case FormatCsv:
		return createCsvReport(allTableValues)
	case FormatYaml:
		return createYamlReport(allTableValues)
	case FormatXlsx:
		return createXlsxReport(allTableValues)
	}
	panic(fmt.Sprintf("expected one of %s, got %s", strings.Join(FormatOptions, ", "), format))
}

// WriteReports renders the tables in every requested format and writes one
// report file per format into the output directory. It returns the paths of
// the files written.
func WriteReports(outputDir, baseName string, formats []string, allTableValues []TableValues) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil { // #nosec G301
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if len(formats) == 1 && formats[0] == FormatAll {
		formats = FormatOptions
	}
	var paths []string
	for _, format := range formats {
		out, err := Create(format, allTableValues)
		if err != nil {
			return paths, err
		}
		reportPath := filepath.Join(outputDir, baseName+"."+format)
		if err := os.WriteFile(reportPath, out, 0644); err != nil { // #nosec G306
			return paths, fmt.Errorf("failed to write report: %w", err)
		}
		slog.Info("wrote report", slog.String("path", reportPath))
		paths = append(paths, reportPath)
	}
	return paths, nil
}
