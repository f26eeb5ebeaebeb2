package store

import "github.com/hance08/txengine/internal/model"

type Repository interface {
	// Run Operations
	SaveRun(run Run) error
	GetRun(id string) (*Run, error)

	// Snapshot Operations
	SaveSnapshot(runID string, accounts []model.AccountSnapshot) error
	GetSnapshot(runID string) ([]model.AccountSnapshot, error)

	// ArchiveRun saves the run and its snapshot atomically
	ArchiveRun(run Run, accounts []model.AccountSnapshot) error

	Close() error
}
