// Package views holds the resource list controllers. Every view follows
// the same contract: fetch its collection on mount (and on declared filter
// changes), render rows, and offer create/update plus a confirmation-gated
// delete. Each view independently owns its fetched snapshot; there is no
// shared entity cache, and every successful mutation is followed by an
// unconditional full re-fetch to converge to the backend's latest state.
package views

import (
	"errors"

	"gymops/admin-console/internal/api"
)

// Prompter asks the operator interactive yes/no questions, e.g. the delete
// confirmation. Tests script it.
type Prompter interface {
	Confirm(question string) bool
}

// FailureMessage maps an error to what the operator sees: the backend's
// reported reason verbatim when present, otherwise the caller's generic
// localized message.
func FailureMessage(err error, generic string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return generic
}
