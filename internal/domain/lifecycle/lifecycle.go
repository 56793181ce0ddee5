// Package lifecycle holds the legal status transitions of quotation requests
// and vendor quotations. Storage adapters enforce the same rules atomically
// through conditional writes built from SourcesFor*.
package lifecycle

import (
	"errors"
	"fmt"

	"solar_marketplace/internal/domain/entities"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrRequestClosed     = errors.New("quotation request is closed")
)

var requestTransitions = map[entities.RequestStatus][]entities.RequestStatus{
	entities.RequestStatusOpen:       {entities.RequestStatusInProgress, entities.RequestStatusClosed},
	entities.RequestStatusInProgress: {entities.RequestStatusClosed},
	entities.RequestStatusClosed:     nil,
}

var quotationTransitions = map[entities.QuotationStatus][]entities.QuotationStatus{
	entities.QuotationStatusSubmitted: {entities.QuotationStatusViewed, entities.QuotationStatusAccepted, entities.QuotationStatusRejected},
	entities.QuotationStatusViewed:    {entities.QuotationStatusAccepted, entities.QuotationStatusRejected},
	entities.QuotationStatusAccepted:  nil,
	entities.QuotationStatusRejected:  nil,
}

func CanTransitionRequest(from, to entities.RequestStatus) bool {
	for _, s := range requestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func CanTransitionQuotation(from, to entities.QuotationStatus) bool {
	for _, s := range quotationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckRequest returns ErrIllegalTransition (wrapped with both states) when
// from -> to is not allowed.
func CheckRequest(from, to entities.RequestStatus) error {
	if !CanTransitionRequest(from, to) {
		return fmt.Errorf("%w: request %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// CheckQuotation validates a quotation transition under its parent request.
// Nothing under a closed request may change.
func CheckQuotation(parent entities.RequestStatus, from, to entities.QuotationStatus) error {
	if parent == entities.RequestStatusClosed {
		return ErrRequestClosed
	}
	if !CanTransitionQuotation(from, to) {
		return fmt.Errorf("%w: quotation %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// SourcesForRequest lists every status from which to is reachable.
func SourcesForRequest(to entities.RequestStatus) []entities.RequestStatus {
	var out []entities.RequestStatus
	for _, from := range []entities.RequestStatus{entities.RequestStatusOpen, entities.RequestStatusInProgress, entities.RequestStatusClosed} {
		if CanTransitionRequest(from, to) {
			out = append(out, from)
		}
	}
	return out
}

// SourcesForQuotation lists every status from which to is reachable.
func SourcesForQuotation(to entities.QuotationStatus) []entities.QuotationStatus {
	var out []entities.QuotationStatus
	for _, from := range []entities.QuotationStatus{
		entities.QuotationStatusSubmitted,
		entities.QuotationStatusViewed,
		entities.QuotationStatusAccepted,
		entities.QuotationStatusRejected,
	} {
		if CanTransitionQuotation(from, to) {
			out = append(out, from)
		}
	}
	return out
}

// PromoteOnQuotation is the status a request moves to when a vendor
// quotation is inserted under it. Only the first insert changes anything.
func PromoteOnQuotation(current entities.RequestStatus) (next entities.RequestStatus, changed bool, err error) {
	switch current {
	case entities.RequestStatusOpen:
		return entities.RequestStatusInProgress, true, nil
	case entities.RequestStatusInProgress:
		return current, false, nil
	default:
		return current, false, ErrRequestClosed
	}
}

// ClosesRequest reports whether moving a quotation to to also closes its
// parent, which freezes every sibling quotation.
func ClosesRequest(to entities.QuotationStatus) bool {
	return to == entities.QuotationStatusAccepted
}

func IsTerminalQuotation(s entities.QuotationStatus) bool {
	return len(quotationTransitions[s]) == 0
}
