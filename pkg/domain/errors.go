package domain

import "errors"

// ErrReplaceWithoutOut is returned when a replacement token is given without a target file.
var ErrReplaceWithoutOut = errors.New("--replace can only be used with --out")

// ErrEmptyReplaceToken is returned when the replacement token is the empty string.
var ErrEmptyReplaceToken = errors.New("--replace token cannot be empty")

// ErrEncoding is returned when the mapping cannot be serialized to JSON.
var ErrEncoding = errors.New("unable to generate json")
