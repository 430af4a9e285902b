// Package mongoerr handles errors from the MongoDB document backend.
//
// It is the document-store sibling of sqlerr: driver errors go in,
// *errs.HTTPError values come out. Duplicate keys and document validation
// failures get stable codes; everything else is a 400 carrying the raw
// driver message.
package mongoerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/todo-api/internal/errs"
	"go.mongodb.org/mongo-driver/mongo"
)

// documentValidationFailure is the server code for $jsonSchema rejections.
const documentValidationFailure = 121

// HandleError converts a Mongo driver error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - mongo.ErrNoDocuments: 404 without body
//   - duplicate key: 400 <ENTITY>_ALREADY_EXISTS
//   - document validation failure: 400 <ENTITY>_INVALID
//   - anything else: 400 with the raw error text
//
// collection names the entity for generated codes ("todos" -> TODO_...).
func HandleError(collection string, err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.NewEmptyNotFoundError()
	}

	if mongo.IsDuplicateKeyError(err) {
		code := errorCode(collection, "ALREADY_EXISTS")
		return errs.NewBadRequestError(err.Error(), true, &code, nil, nil)
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(documentValidationFailure) {
		code := errorCode(collection, "INVALID")
		return errs.NewBadRequestError(err.Error(), true, &code, nil, nil)
	}

	return errs.NewPersistenceError(err)
}

// errorCode builds <ENTITY>_<ACTION> from a collection name.
func errorCode(collection, action string) string {
	domain := strings.ToUpper(collection)
	if domain == "" {
		domain = "RECORD"
	}
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}
	return fmt.Sprintf("%s_%s", domain, action)
}
