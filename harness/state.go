package harness

// State is the phase of a single run. A run moves through the states in
// declaration order and never goes back.
type State int

const (
	Idle State = iota
	CountersZeroed
	WorkersSpawned
	AllWorkersJoined
	Reported
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case CountersZeroed:
		return "CountersZeroed"
	case WorkersSpawned:
		return "WorkersSpawned"
	case AllWorkersJoined:
		return "AllWorkersJoined"
	case Reported:
		return "Reported"
	}
	return "Unknown"
}
