package evidence

import "errors"

var (
	// ErrNotFound means no evidence exists with the given id in either source.
	ErrNotFound = errors.New("evidence not found")

	// ErrAlreadyDecided means the proof left Pending before this decision landed.
	ErrAlreadyDecided = errors.New("evidence already decided")

	// ErrNotApplicable means an operator decision was attempted on a
	// gateway-sourced item, whose status is owned by the gateway.
	ErrNotApplicable = errors.New("decision not applicable to gateway evidence")
)
