package infra

import (
	"errors"
	"fmt"

	cr "github.com/cockroachdb/errors"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
)

// RepositoryError carries a classification that the usecase layer can
// branch on without inspecting driver-level error codes.
type RepositoryError struct {
	Kind RepositoryErrorKind
	Msg  string
	Err  error
}

func (e *RepositoryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// WrapRepoErr classifies err as a RepositoryError. Kind defaults to
// DB_FAILURE when omitted.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	if err != nil {
		err = cr.Wrap(err, msg)
	}
	return &RepositoryError{Kind: kind, Msg: msg, Err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}
