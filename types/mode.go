package types

// Mode is the top-level conversation policy selected at session creation.
// Each mode has its own turn-taking algorithm.
type Mode string

const (
	// ModeJury runs a fixed-turn presentation evaluation: jurors ask
	// questions in registration order until the question cap is reached.
	ModeJury Mode = "presentation-jury-mode"

	// ModeEnvironment runs an open-ended group chat inside a themed
	// environment (school, office, ...).
	ModeEnvironment Mode = "environment"
)

// Valid reports whether m is a known conversation mode.
func (m Mode) Valid() bool {
	return m == ModeJury || m == ModeEnvironment
}

// Gender is the persona gender tag used for avatar and voice assignment.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// DefaultEnvironmentType is used when a session request omits the
// environment type or supplies an unrecognized one.
const DefaultEnvironmentType = "school"

// DefaultUserName labels user history entries when the client does not
// send a display name.
const DefaultUserName = "User"
