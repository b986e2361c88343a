//go:build !arraydebug

package sharedarray

const debugChecks = false
