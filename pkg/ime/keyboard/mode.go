package keyboard

// Mode identifies which key plane a keyboard shows.
type Mode int

const (
	ModeCharacters Mode = iota
	ModeEditing
	ModeNumeric
	ModeNumericAdvanced
	ModePhone
	ModePhone2
	ModeSymbols
	ModeSymbols2
	ModeSmartbarNumberRow
	ModeSmartbarActions
)

func (m Mode) String() string {
	switch m {
	case ModeCharacters:
		return "characters"
	case ModeEditing:
		return "editing"
	case ModeNumeric:
		return "numeric"
	case ModeNumericAdvanced:
		return "numeric_advanced"
	case ModePhone:
		return "phone"
	case ModePhone2:
		return "phone2"
	case ModeSymbols:
		return "symbols"
	case ModeSymbols2:
		return "symbols2"
	case ModeSmartbarNumberRow:
		return "smartbar_number_row"
	case ModeSmartbarActions:
		return "smartbar_actions"
	default:
		return "unknown"
	}
}
