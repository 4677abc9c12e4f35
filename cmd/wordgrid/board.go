package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type boardFile struct {
	Rows []string `yaml:"rows"`
}

// loadBoard reads a yaml board file of the form:
//
//	rows:
//	  - rael
//	  - mofs
//	  - teok
//	  - nati
//
// Rows are lowercased for word matching.
func loadBoard(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bf boardFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse board %s: %w", path, err)
	}
	rows := make([]string, len(bf.Rows))
	for i, row := range bf.Rows {
		rows[i] = strings.ToLower(strings.TrimSpace(row))
	}
	return rows, nil
}
