// Package testutil holds helpers for building configuration trees in tests.
package testutil
