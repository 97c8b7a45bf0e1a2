package models

import "errors"

var (
	// ErrSourceUnavailable is returned when a required CRM fetch fails.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrRunInProgress is returned when a report run is triggered while another is in flight.
	ErrRunInProgress = errors.New("report run in progress")
	// ErrNoRecipients signals an empty recipient list.
	ErrNoRecipients = errors.New("no recipients configured")
	// ErrCrmResponse signals a non-2xx or unsuccessful CRM response.
	ErrCrmResponse = errors.New("crm response error")
)
