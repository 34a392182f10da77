package repository

import (
	"context"

	"VibeFinance/internal/domain/models"
	domrepo "VibeFinance/internal/domain/repository"
)

// NopJournal discards events. Used when journal.backend is none.
type NopJournal struct{}

var _ domrepo.Journal = NopJournal{}

func (NopJournal) Record(context.Context, *models.LookupEvent) error { return nil }
func (NopJournal) Close() error                                      { return nil }
