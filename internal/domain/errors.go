package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrWriteConflict = errors.New("write conflict")
	ErrCorruptData   = errors.New("corrupt data")
)

type NotFoundError struct {
	Kind string
	IDs  []ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Kind, e.IDs)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type WriteReason string

const (
	ReasonAmbiguousAlias  WriteReason = "ambiguous alias"
	ReasonMissingParent   WriteReason = "missing parent"
	ReasonConditionFailed WriteReason = "condition failed"
	ReasonInvalid         WriteReason = "invalid content"
)

// WriteError means the write was not applied.
type WriteError struct {
	Reason   WriteReason
	Resource ResourceRef
	Detail   string
}

func (e *WriteError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("write %s %d: %s", e.Resource.Type, e.Resource.ID, e.Reason)
	}
	return fmt.Sprintf("write %s %d: %s: %s", e.Resource.Type, e.Resource.ID, e.Reason, e.Detail)
}

func (e *WriteError) Unwrap() error { return ErrWriteConflict }

// CorruptDataError is returned when a stored row does not match its declared type.
type CorruptDataError struct {
	ID     ID
	Reason string
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt row %d: %s", e.ID, e.Reason)
}

func (e *CorruptDataError) Unwrap() error { return ErrCorruptData }
