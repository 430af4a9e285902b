// Package lib groups small helpers that belong to no single layer.
//
// The auth subpackage hashes passwords with bcrypt and signs the JWT
// auth tokens stored on fixture users.
package lib
