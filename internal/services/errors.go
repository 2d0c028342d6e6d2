package services

// Custom errors

// ValidationError reports a malformed or incomplete request.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// GenerationError wraps any failure surfaced by the remote generative call:
// network, auth, quota, or an empty completion. The underlying error is
// logged server-side; callers see a generic message.
type GenerationError struct{ Err error }

func (e *GenerationError) Error() string { return "generation failed: " + e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }
