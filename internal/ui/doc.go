// Package ui renders command output: aligned tables and styled headings.
package ui
