// Package errors provides structured errors for the session engine.
//
// Every error carries a Code that decides how it is reported over gRPC.
// Failures the engine itself detects also carry a Kind, the name callers
// branch on (InvalidStateTransition, NotActiveTurn, WriteConflict, ...).
//
// Creating errors:
//
//	err := errors.NotFoundf("session %s not found", id)
//	err := errors.NotActiveTurn(entityUID, activeUID)
//
// Wrapping keeps both code and kind:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save session")
//	}
//
// Checking:
//
//	if errors.IsRetryable(err) {
//	    // re-read the session and recompute
//	}
//
// At the transport boundary, ToGRPCError maps the code onto a gRPC status and
// attaches the kind as an ErrorInfo reason. FromGRPCError reverses it on the
// client side.
package errors
