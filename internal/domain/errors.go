package domain

import "errors"

var (
	// Input boundary errors
	ErrMalformedToken = errors.New("word boundary record missing a required field")

	// Synthesis errors
	ErrSynthesisFailed    = errors.New("speech synthesis failed")
	ErrMissingCredentials = errors.New("speech key or region not configured")

	// Cache errors
	ErrCacheExpired = errors.New("cache expired")
	ErrCacheMiss    = errors.New("cache miss")
)
