package game

// ErrorCode groups game errors into the categories the HTTP layer reports.
type ErrorCode string

const (
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeIllegalState    ErrorCode = "ILLEGAL_STATE"
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeGameTimedOut    ErrorCode = "GAME_TIMED_OUT"
)

// GameError is a categorized, caller-facing failure. Timeout is a normal
// transition, not a fault, but the in-flight action is still rejected.
type GameError struct {
	Code    ErrorCode
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

var (
	ErrSessionNotFound  = &GameError{Code: CodeNotFound, Message: "SESSION_NOT_FOUND"}
	ErrSessionExists    = &GameError{Code: CodeIllegalState, Message: "SESSION_ALREADY_ACTIVE"}
	ErrGameEnded        = &GameError{Code: CodeIllegalState, Message: "GAME_ALREADY_ENDED"}
	ErrMaxRoundsReached = &GameError{Code: CodeIllegalState, Message: "MAX_ROUNDS_REACHED"}
	ErrIllegalHold      = &GameError{Code: CodeIllegalState, Message: "HOLD_NOT_ALLOWED"}
	ErrInvalidHoldCount = &GameError{Code: CodeInvalidArgument, Message: "TOO_MANY_HELD_POSITIONS"}
	ErrInvalidPosition  = &GameError{Code: CodeInvalidArgument, Message: "INVALID_HOLD_POSITION"}
	ErrGameTimedOut     = &GameError{Code: CodeGameTimedOut, Message: "GAME_TIMED_OUT"}
)
