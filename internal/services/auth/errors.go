package auth

import "errors"

// ErrEmailTaken is returned when registration hits an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is the single error for both unknown-email and
// wrong-password login failures. Keeping the two cases indistinguishable
// prevents account enumeration, so do not split it.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrGenToken is returned when we cannot sign a JWT.
var ErrGenToken = errors.New("failed to generate token")
