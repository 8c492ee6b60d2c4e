package infra

import (
	"errors"
	"log/slog"

	"sdi-showcase/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	Key  string
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	prefix := string(e.Kind)
	if e.Key != "" {
		prefix += "[" + e.Key + "]"
	}
	if e.err != nil {
		return prefix + ": " + e.msg + ": " + e.err.Error()
	}
	return prefix + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func (e RepositoryError) Is(target error) bool {
	return target == errs.ErrStorage
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, key, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("slot", key),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Key: key, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindStorageFailure RepositoryErrorKind = "STORAGE_FAILURE"
	KindEncodeFailure  RepositoryErrorKind = "ENCODE_FAILURE"
)
