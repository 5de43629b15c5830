package keyboard

// Symbolic key codes. Printable keys carry their Unicode code point;
// command keys use negative values so the ranges can never collide.
const (
	CodeUnspecified int32 = 0

	CodeSpace      int32 = 32
	CodePhonePause int32 = 44 // ','
	CodePhoneWait  int32 = 59 // ';'
	CodeKeshida    int32 = 1600  // Arabic tatweel U+0640
	CodeHalfSpace  int32 = 8204  // zero-width non-joiner U+200C
	CodeCJKSpace   int32 = 12288 // ideographic space U+3000

	CodeDelete     int32 = -7
	CodeDeleteWord int32 = -8
	CodeEnter      int32 = -10
	CodeShift      int32 = -11
	CodeShiftLock  int32 = -13

	CodeArrowDown  int32 = -21
	CodeArrowLeft  int32 = -22
	CodeArrowRight int32 = -23
	CodeArrowUp    int32 = -24

	CodeClipboardCopy      int32 = -31
	CodeClipboardCut       int32 = -32
	CodeClipboardPaste     int32 = -33
	CodeClipboardSelect    int32 = -34
	CodeClipboardSelectAll int32 = -35

	CodeSwitchToMediaContext int32 = -101
	CodeSwitchToTextContext  int32 = -102
	CodeToggleCompactLayout  int32 = -111

	CodeViewCharacters      int32 = -201
	CodeViewNumeric         int32 = -202
	CodeViewNumericAdvanced int32 = -203
	CodeViewPhone           int32 = -204
	CodeViewPhone2          int32 = -205
	CodeViewSymbols         int32 = -206
	CodeViewSymbols2        int32 = -207

	CodeLanguageSwitch int32 = -227
)
