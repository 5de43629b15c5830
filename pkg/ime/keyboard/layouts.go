package keyboard

// Built-in key planes. They cover the preview binary and tests; real
// deployments feed computed keyboards from their own layout definitions.

func DefaultCharacters() *Keyboard {
	return &Keyboard{
		Mode: ModeCharacters,
		Rows: [][]*Key{
			// Row 1: qwerty with number-row hints
			{
				CharKey("q").WithNumberHint("1"),
				CharKey("w").WithNumberHint("2"),
				CharKey("e").WithNumberHint("3"),
				CharKey("r").WithNumberHint("4"),
				CharKey("t").WithNumberHint("5"),
				CharKey("y").WithNumberHint("6"),
				CharKey("u").WithNumberHint("7"),
				CharKey("i").WithNumberHint("8"),
				CharKey("o").WithNumberHint("9"),
				CharKey("p").WithNumberHint("0"),
			},
			// Row 2: home row with symbol hints
			{
				CharKey("a").WithSymbolHint("@"),
				CharKey("s").WithSymbolHint("#"),
				CharKey("d").WithSymbolHint("$"),
				CharKey("f").WithSymbolHint("_"),
				CharKey("g").WithSymbolHint("&"),
				CharKey("h").WithSymbolHint("-"),
				CharKey("j").WithSymbolHint("+"),
				CharKey("k").WithSymbolHint("("),
				CharKey("l").WithSymbolHint(")"),
			},
			// Row 3: shift + zxcv + delete
			{
				FuncKey(KeyTypeModifier, CodeShift, "shift", 1.5),
				CharKey("z"),
				CharKey("x"),
				CharKey("c"),
				CharKey("v"),
				CharKey("b"),
				CharKey("n"),
				CharKey("m"),
				FuncKey(KeyTypeFunction, CodeDelete, "delete", 1.5),
			},
			// Row 4: symbols view + comma + space + period + enter
			{
				FuncKey(KeyTypeSystem, CodeViewSymbols, "view_symbols", 1.5),
				CharKey(",").WithAlternate(VariationEmail, "@").WithAlternate(VariationURI, "/"),
				FuncKey(KeyTypeCharacter, CodeSpace, "space", 4.0),
				CharKey("."),
				FuncKey(KeyTypeEnterEditing, CodeEnter, "enter", 1.5),
			},
		},
	}
}

func DefaultNumeric() *Keyboard {
	return &Keyboard{
		Mode: ModeNumeric,
		Rows: [][]*Key{
			{NumKey("1"), NumKey("2"), NumKey("3"), FuncKey(KeyTypeFunction, CodeDelete, "delete", 1.0)},
			{NumKey("4"), NumKey("5"), NumKey("6"), FuncKey(KeyTypeCharacter, CodeSpace, "space", 1.0)},
			{NumKey("7"), NumKey("8"), NumKey("9"), FuncKey(KeyTypeEnterEditing, CodeEnter, "enter", 1.0)},
			{FuncKey(KeyTypeSystem, CodeViewCharacters, "view_characters", 1.0), NumKey("0"), CharKey(","), CharKey(".")},
		},
	}
}

func DefaultPhone() *Keyboard {
	return &Keyboard{
		Mode: ModePhone,
		Rows: [][]*Key{
			{NumKey("1"), NumKey("2"), NumKey("3"), FuncKey(KeyTypeFunction, CodeDelete, "delete", 1.0)},
			{NumKey("4"), NumKey("5"), NumKey("6"), FuncKey(KeyTypeCharacter, CodeSpace, "space", 1.0)},
			{NumKey("7"), NumKey("8"), NumKey("9"), FuncKey(KeyTypeEnterEditing, CodeEnter, "enter", 1.0)},
			{
				FuncKey(KeyTypeSystem, CodeViewPhone2, "view_phone2", 1.0),
				NumKey("0").WithSymbolHint("+"),
				FuncKey(KeyTypeCharacter, CodePhonePause, "pause", 1.0),
				FuncKey(KeyTypeCharacter, CodePhoneWait, "wait", 1.0),
			},
		},
	}
}

// DefaultSmartbarActions is the single-row action bar plane.
func DefaultSmartbarActions() *Keyboard {
	return &Keyboard{
		Mode: ModeSmartbarActions,
		Rows: [][]*Key{
			{
				FuncKey(KeyTypeSystem, CodeSwitchToMediaContext, "media_context", 1.0),
				FuncKey(KeyTypeNavigation, CodeArrowLeft, "arrow_left", 1.0),
				FuncKey(KeyTypeNavigation, CodeArrowRight, "arrow_right", 1.0),
				FuncKey(KeyTypeFunction, CodeClipboardCopy, "clipboard_copy", 1.0),
				FuncKey(KeyTypeFunction, CodeClipboardPaste, "clipboard_paste", 1.0),
				FuncKey(KeyTypeFunction, CodeClipboardSelectAll, "clipboard_select_all", 1.0),
			},
		},
	}
}
