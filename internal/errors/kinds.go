package errors

import (
	"fmt"
	"strings"
)

// Kind names a domain failure the session engine can report.
// Each kind maps onto exactly one Code.
type Kind string

// Session engine error kinds
const (
	KindInvalidStateTransition Kind = "InvalidStateTransition"
	KindNotActiveTurn          Kind = "NotActiveTurn"
	KindEmptyTurnQueue         Kind = "EmptyTurnQueue"
	KindDuplicateEntity        Kind = "DuplicateEntity"
	KindEntityNotInSession     Kind = "EntityNotInSession"
	KindTargetNotFound         Kind = "TargetNotFound"
	KindAttackerNotInSession   Kind = "AttackerNotInSession"
	KindInvalidDiceSpec        Kind = "InvalidDiceSpec"
	KindWriteConflict          Kind = "WriteConflict"
	KindMapSizeOutOfRange      Kind = "MapSizeOutOfRange"
)

// Code returns the code a kind is reported under
func (k Kind) Code() Code {
	switch k {
	case KindInvalidStateTransition, KindNotActiveTurn, KindEmptyTurnQueue:
		return CodeFailedPrecondition
	case KindDuplicateEntity:
		return CodeAlreadyExists
	case KindEntityNotInSession, KindTargetNotFound, KindAttackerNotInSession:
		return CodeNotFound
	case KindInvalidDiceSpec:
		return CodeInvalidArgument
	case KindWriteConflict:
		return CodeAborted
	case KindMapSizeOutOfRange:
		return CodeOutOfRange
	default:
		return CodeInternal
	}
}

// NewKind creates an error of the given kind
func NewKind(kind Kind, message string) *Error {
	return &Error{
		Code:    kind.Code(),
		Kind:    kind,
		Message: message,
	}
}

// NewKindf creates an error of the given kind with a formatted message
func NewKindf(kind Kind, format string, args ...interface{}) *Error {
	return NewKind(kind, fmt.Sprintf(format, args...))
}

// InvalidStateTransition reports an operation attempted from a status that does not allow it
func InvalidStateTransition(operation, current string, allowed []string) *Error {
	return NewKindf(KindInvalidStateTransition,
		"cannot %s a session that is %s (allowed: %s)", operation, current, strings.Join(allowed, ", ")).
		WithMeta("operation", operation).
		WithMeta("current_status", current).
		WithMeta("allowed_statuses", allowed)
}

// NotActiveTurn reports a turn operation by an entity that is not at the front of the queue
func NotActiveTurn(entityUID, activeUID string) *Error {
	return NewKindf(KindNotActiveTurn, "entity %s does not hold the active turn", entityUID).
		WithMeta("entity_uid", entityUID).
		WithMeta("active_uid", activeUID)
}

// EmptyTurnQueue reports a turn operation against an empty queue
func EmptyTurnQueue(sessionID string) *Error {
	return NewKind(KindEmptyTurnQueue, "turn queue is empty").
		WithMeta("session_id", sessionID)
}

// DuplicateEntity reports an add for an identifier the session already holds
func DuplicateEntity(entityUID string) *Error {
	return NewKindf(KindDuplicateEntity, "entity %s already belongs to the session", entityUID).
		WithMeta("entity_uid", entityUID)
}

// EntityNotInSession reports an identifier absent from every roster list
func EntityNotInSession(entityUID string) *Error {
	return NewKindf(KindEntityNotInSession, "entity %s is not in the session", entityUID).
		WithMeta("entity_uid", entityUID)
}

// TargetNotFound reports a missing or unsuitable combat target
func TargetNotFound(entityUID string) *Error {
	return NewKindf(KindTargetNotFound, "target %s not found", entityUID).
		WithMeta("entity_uid", entityUID)
}

// AttackerNotInSession reports an attacker absent from the roster
func AttackerNotInSession(entityUID string) *Error {
	return NewKindf(KindAttackerNotInSession, "attacker %s is not in the session", entityUID).
		WithMeta("entity_uid", entityUID)
}

// InvalidDiceSpec reports an empty dice list or an unsupported die
func InvalidDiceSpec(reason string) *Error {
	return NewKindf(KindInvalidDiceSpec, "invalid dice spec: %s", reason)
}

// WriteConflict reports a save against a session that changed since it was read
func WriteConflict(sessionID string, expected, actual int64) *Error {
	return NewKindf(KindWriteConflict, "session %s was modified concurrently", sessionID).
		WithMeta("session_id", sessionID).
		WithMeta("expected_version", expected).
		WithMeta("actual_version", actual)
}

// MapSizeOutOfRange reports a map dimension outside the allowed bounds
func MapSizeOutOfRange(dimension string, value, minValue, maxValue int32) *Error {
	return NewKindf(KindMapSizeOutOfRange, "map %s %d must be between %d and %d", dimension, value, minValue, maxValue).
		WithMeta("dimension", dimension).
		WithMeta("value", value)
}
