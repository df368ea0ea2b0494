package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingAgentID      = errors.New("agent_id is required")
	ErrMissingCustomerName = errors.New("customer_name is required")
	ErrMissingTitle        = errors.New("title is required")
	ErrMissingFileName     = errors.New("file_name is required")
	ErrMissingFileURL      = errors.New("file_url is required")
	ErrMissingEntityType   = errors.New("entity_type is required")
	ErrMissingEntityID     = errors.New("entity_id is required")
)

// Sentinel errors for entity lookups.
var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrWorkflowNotFound  = errors.New("workflow not found")
	ErrExecutionNotFound = errors.New("execution not found")
)

// ErrWorkflowInactive indicates the workflow exists but is disabled. The
// trigger endpoint reports it the same way as a missing workflow.
var ErrWorkflowInactive = errors.New("workflow inactive")

// ErrTriggerNotMatched indicates the entity payload does not satisfy the
// workflow's stored trigger conditions (only checked when the caller asks).
var ErrTriggerNotMatched = errors.New("trigger conditions not matched")

// ErrDuplicateKey indicates a unique constraint violation (maps to HTTP 409 Conflict).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidEnum returns an error indicating a field holds a value outside its
// closed enumeration.
func ErrInvalidEnum(field, value string) error {
	return fmt.Errorf("invalid %s: %q", field, value)
}

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
