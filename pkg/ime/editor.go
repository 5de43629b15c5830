package ime

// EditorAction is the action the target editor advertises for the enter
// key, mirroring the IME action of the focused input field.
type EditorAction int

const (
	EditorActionUnspecified EditorAction = iota
	EditorActionNone
	EditorActionDone
	EditorActionGo
	EditorActionNext
	EditorActionPrevious
	EditorActionSearch
	EditorActionSend
)

func (a EditorAction) String() string {
	switch a {
	case EditorActionNone:
		return "none"
	case EditorActionDone:
		return "done"
	case EditorActionGo:
		return "go"
	case EditorActionNext:
		return "next"
	case EditorActionPrevious:
		return "previous"
	case EditorActionSearch:
		return "search"
	case EditorActionSend:
		return "send"
	default:
		return "unspecified"
	}
}

// EditorInfo describes the focused input field. SuppressAction forces the
// enter key back to a plain return even when an action is advertised,
// which multi-line fields use.
type EditorInfo struct {
	Action         EditorAction
	SuppressAction bool
}
