// Package domain defines the seed ports and report
package domain

import (
	"context"

	"econlens/internal/core/indicators"
)

// Targets a dataset can be seeded into
const (
	TargetPG = "pg"
	TargetCH = "ch"
)

// Report counts what a seed run wrote
type Report struct {
	Records int `json:"records"`
	PGRows  int `json:"pg_rows"`
	CHRows  int `json:"ch_rows"`
}

// RunnerPort is the public port exposed by the module
type RunnerPort interface {
	Seed(ctx context.Context, ds *indicators.Dataset) (Report, error)
}

// StorageRepo writes a dataset into one backend
type StorageRepo interface {
	// Write creates the table if needed and stores every record, returning rows written
	Write(ctx context.Context, ds *indicators.Dataset) (int, error)
}
