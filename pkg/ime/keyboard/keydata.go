package keyboard

// KeyType groups keys by render and behavior class.
type KeyType int

const (
	KeyTypeUnspecified KeyType = iota
	KeyTypeCharacter
	KeyTypeEnterEditing
	KeyTypeFunction
	KeyTypeModifier
	KeyTypeNavigation
	KeyTypeNumeric
	KeyTypeSystem
	KeyTypePlaceholder
)

// KeyVariation narrows which alternate symbol set applies for the host
// text field.
type KeyVariation int

const (
	VariationAll KeyVariation = iota
	VariationNormal
	VariationEmail
	VariationPassword
	VariationURI
)

// KeyData is the symbolic payload of a key: what it inputs and what it
// shows. Label doubles as the theme selector scope for the key, so command
// keys carry stable labels like "enter" or "shift" even though their
// rendered content comes from the icon table.
type KeyData struct {
	Type  KeyType
	Code  int32
	Label string
}
