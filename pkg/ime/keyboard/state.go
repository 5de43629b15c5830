package keyboard

// State is the interaction state a keyboard is recomputed against. Caps is
// the one-shot shift level, CapsLock the latched one; both may be set, in
// which case the lock wins wherever they differ in effect.
type State struct {
	Caps      bool
	CapsLock  bool
	Variation KeyVariation
}

// Uppercased reports whether character labels fold to upper case.
func (s State) Uppercased() bool {
	return s.Caps || s.CapsLock
}
