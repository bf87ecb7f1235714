package main

const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // Any top-level failure
)
