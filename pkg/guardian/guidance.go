package guardian

import (
	"errors"
	"fmt"
)

// Guidance is a precondition failure reported to the requester as a polite
// message. It is returned as an error so callers can stop early, but it is
// never logged as one.
type Guidance struct {
	Message string
}

func (g *Guidance) Error() string {
	return g.Message
}

// AsGuidance extracts a *Guidance from err
func AsGuidance(err error) (*Guidance, bool) {
	var guidance *Guidance
	if errors.As(err, &guidance) {
		return guidance, true
	}
	return nil, false
}

func guidancef(format string, args ...interface{}) *Guidance {
	return &Guidance{Message: fmt.Sprintf(format, args...)}
}

// notInitializedActor is the guidance for an actor that never ran initialize
func notInitializedActor() *Guidance {
	return &Guidance{Message: "Do `ailie;initialize` or `a;initialize` first before anything!"}
}

func notInitializedTarget(target Identity) *Guidance {
	return guidancef("%s is not initialized yet!", target.Mention)
}
