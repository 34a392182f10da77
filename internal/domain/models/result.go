package models

import "fmt"

type Outcome string

const (
	OutcomeLoaded   Outcome = "ok"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "error"
)

// FetchResult is the tagged outcome of one fetch sequence. Snapshot is set
// only for OutcomeLoaded and Err only for OutcomeFailed.
type FetchResult struct {
	Outcome  Outcome
	Symbol   string
	Snapshot *Snapshot
	Err      error
}

func Loaded(s *Snapshot) FetchResult {
	return FetchResult{Outcome: OutcomeLoaded, Symbol: s.Symbol, Snapshot: s}
}

func NotFound(symbol string) FetchResult {
	return FetchResult{Outcome: OutcomeNotFound, Symbol: symbol}
}

func Failed(symbol string, err error) FetchResult {
	return FetchResult{Outcome: OutcomeFailed, Symbol: symbol, Err: err}
}

// FetchError names the provider operation that failed.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
