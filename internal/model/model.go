// Package model declares the documents this API stores.
//
// The types are passive: they carry bson, json and db tags and nothing
// else. Rules such as the completedAt invariant live in the service layer.
package model
