package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is wrapped by every status parse failure.
var ErrInvalidStatus = errors.New("invalid status")

// ExpenseStatus is the review state of an expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

// IncomeStatus is the settlement state of an income.
type IncomeStatus string

const (
	IncomePending   IncomeStatus = "pending"
	IncomeCompleted IncomeStatus = "completed"
	IncomeRejected  IncomeStatus = "rejected"
)

// ParseExpenseStatus accepts only the enumerated expense statuses
// (case-insensitive, surrounding whitespace ignored).
func ParseExpenseStatus(s string) (ExpenseStatus, error) {
	switch v := ExpenseStatus(strings.ToLower(strings.TrimSpace(s))); v {
	case ExpensePending, ExpenseApproved, ExpenseRejected:
		return v, nil
	}
	return "", fmt.Errorf("%w %q: expense status must be one of pending, approved, rejected", ErrInvalidStatus, s)
}

// ParseIncomeStatus accepts only the enumerated income statuses.
func ParseIncomeStatus(s string) (IncomeStatus, error) {
	switch v := IncomeStatus(strings.ToLower(strings.TrimSpace(s))); v {
	case IncomePending, IncomeCompleted, IncomeRejected:
		return v, nil
	}
	return "", fmt.Errorf("%w %q: income status must be one of pending, completed, rejected", ErrInvalidStatus, s)
}

// IsValid reports whether s is one of the enumerated values.
func (s ExpenseStatus) IsValid() bool {
	_, err := ParseExpenseStatus(string(s))
	return err == nil
}

// IsValid reports whether s is one of the enumerated values.
func (s IncomeStatus) IsValid() bool {
	_, err := ParseIncomeStatus(string(s))
	return err == nil
}

// UnmarshalJSON rejects anything that is not a JSON string holding a known
// status, so objects, numbers and arrays never reach the store.
func (s *ExpenseStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: expense status must be a string", ErrInvalidStatus)
	}
	v, err := ParseExpenseStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalJSON rejects anything that is not a JSON string holding a known
// status.
func (s *IncomeStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: income status must be a string", ErrInvalidStatus)
	}
	v, err := ParseIncomeStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
