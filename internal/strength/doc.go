package strength

// Package strength implements the pure password strength evaluator: the score
// function, the qualitative level scale with configurable cut-points, and the
// color palette associated with each level. Everything here is deterministic
// and side-effect free.
