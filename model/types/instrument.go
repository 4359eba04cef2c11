package types

// Instrument is a named, role-tagged payload registered with a conductor.
type Instrument struct {
	Name    string
	Payload Payload
	Role    Role
	Ready   bool
	// Version is assigned by the registry on every registration
	Version uint64
}

// NewInstrument creates an untuned instrument
func NewInstrument(name string, payload Payload, role Role) *Instrument {
	if payload == nil {
		payload = Value(nil)
	}
	return &Instrument{Name: name, Payload: payload, Role: role}
}
