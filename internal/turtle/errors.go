package turtle

import "errors"

// ErrInvalidInput is returned when a distance, radius, angle or count is outside
// the domain an operation accepts (NaN, infinite, negative radius, count below 1).
var ErrInvalidInput = errors.New("invalid input")

// ErrDivisionByZero is returned when a side or iteration count of zero would be
// used as a divisor.
var ErrDivisionByZero = errors.New("division by zero")
