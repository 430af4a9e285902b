// Package service holds the todo and user business rules.
//
// Handlers pass it validated input. It trims text, derives the completion
// timestamp and seeds fixtures, and leaves persistence to the repository
// interfaces it is built with.
package service
