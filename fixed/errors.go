package fixed

import "errors"

// Sentinel errors for fixed package.
var (
	// ErrInvalidFormat is returned when a limb count or integer width is out of range.
	ErrInvalidFormat = errors.New("fixed: invalid format")

	// ErrOutOfRange is returned when a value does not fit the format.
	ErrOutOfRange = errors.New("fixed: value out of range")

	// ErrSyntax is returned when a decimal string cannot be parsed.
	ErrSyntax = errors.New("fixed: invalid number syntax")

	// ErrLimbs is returned when raw limbs do not match the format.
	ErrLimbs = errors.New("fixed: invalid limbs")
)
