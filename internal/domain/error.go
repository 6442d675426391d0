package domain

import "errors"

var (
	// ErrInvalidInput marks a malformed or missing request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates the referenced account (or its card) does not exist.
	ErrNotFound = errors.New("account not found")
	// ErrInvalidAmount is returned for non-positive, non-finite or unrepresentable amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds occurs when a debit exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCardAlreadyIssued is returned when an account already holds a virtual card.
	ErrCardAlreadyIssued = errors.New("card already issued")
	// ErrIneligibleExpense marks a spend that is not a qualified medical expense.
	ErrIneligibleExpense = errors.New("ineligible expense")
)
