package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	"github.com/kaelstrom/grammex/compare"
)

// savedReport is the REZI-encoded record written by --save: enough of a
// compare.Report to reconstruct the summary table and recommendation
// without the grammar or the full automatons, plus a run identity so
// repeated saves over the same grammar can be told apart (§10.9).
type savedReport struct {
	RunID          string
	SavedAt        int64
	Recommendation string
	SLR            savedSummary
	CLR            savedSummary
	LALR           savedSummary
	LL1            savedSummary
}

type savedSummary struct {
	Flavor          string
	ConflictFree    bool
	StateCount      int
	TransitionCount int
	ConflictCount   int
	ActionCells     int
	GotoCells       int
}

func toSavedSummary(s compare.Summary) savedSummary {
	return savedSummary{
		Flavor:          s.Flavor,
		ConflictFree:    s.ConflictFree,
		StateCount:      s.StateCount,
		TransitionCount: s.TransitionCount,
		ConflictCount:   s.ConflictCount,
		ActionCells:     s.ActionCells,
		GotoCells:       s.GotoCells,
	}
}

// saveReport persists r to path, REZI-encoded, the way the teacher persists
// game.State into its sqlite DAO layer (server/dao/sqlite/sqlite.go).
// Stamped with a fresh run ID (§10.9) since a report has no identity of its
// own until it's saved.
func saveReport(path string, r compare.Report, savedAt int64) (uuid.UUID, error) {
	runID, err := uuid.NewRandom()
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("generating run id: %w", err)
	}

	rec := savedReport{
		RunID:          runID.String(),
		SavedAt:        savedAt,
		Recommendation: r.Recommendation,
		SLR:            toSavedSummary(r.SLR),
		CLR:            toSavedSummary(r.CLR),
		LALR:           toSavedSummary(r.LALR),
		LL1:            toSavedSummary(r.LL1),
	}

	data := rezi.EncBinary(rec)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return uuid.UUID{}, fmt.Errorf("writing %q: %w", path, err)
	}
	return runID, nil
}

// nowUnix exists so main can stamp SavedAt without the persistence layer
// itself reaching for time.Now at an inconvenient point in a test.
func nowUnix() int64 { return time.Now().Unix() }
