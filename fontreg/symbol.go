package fontreg

// symbolTable implements the Adobe Symbol font encoding's Greek-letter
// and mathematical-symbol sub-ranges referenced in §6.4: 0x20..0x7E,
// 0x80..0x8D, 0xA0..0xFE. Entries not covering a legacy Symbol glyph
// fall through to the Mac-Roman table via Registry.ToUnicode.
var symbolTable = map[byte]rune{
	// Uppercase Greek, 0x41..0x5A.
	0x41: 0x0391, // Alpha
	0x42: 0x0392, // Beta
	0x43: 0x03A7, // Chi
	0x44: 0x0394, // Delta
	0x45: 0x0395, // Epsilon
	0x46: 0x03A6, // Phi
	0x47: 0x0393, // Gamma
	0x48: 0x0397, // Eta
	0x49: 0x0399, // Iota
	0x4A: 0x03D1, // theta symbol
	0x4B: 0x039A, // Kappa
	0x4C: 0x039B, // Lambda
	0x4D: 0x039C, // Mu
	0x4E: 0x039D, // Nu
	0x4F: 0x039F, // Omicron
	0x50: 0x03A0, // Pi
	0x51: 0x0398, // Theta
	0x52: 0x03A1, // Rho
	0x53: 0x03A3, // Sigma
	0x54: 0x03A4, // Tau
	0x55: 0x03A5, // Upsilon
	0x56: 0x03C2, // final sigma
	0x57: 0x03A9, // Omega
	0x58: 0x039E, // Xi
	0x59: 0x03A8, // Psi
	0x5A: 0x0396, // Zeta

	// Lowercase Greek, 0x61..0x7A.
	0x61: 0x03B1, // alpha
	0x62: 0x03B2, // beta
	0x63: 0x03C7, // chi
	0x64: 0x03B4, // delta
	0x65: 0x03B5, // epsilon
	0x66: 0x03C6, // phi
	0x67: 0x03B3, // gamma
	0x68: 0x03B7, // eta
	0x69: 0x03B9, // iota
	0x6A: 0x03D5, // phi symbol
	0x6B: 0x03BA, // kappa
	0x6C: 0x03BB, // lambda
	0x6D: 0x03BC, // mu
	0x6E: 0x03BD, // nu
	0x6F: 0x03BF, // omicron
	0x70: 0x03C0, // pi
	0x71: 0x03B8, // theta
	0x72: 0x03C1, // rho
	0x73: 0x03C3, // sigma
	0x74: 0x03C4, // tau
	0x75: 0x03C5, // upsilon
	0x76: 0x03D6, // omega symbol (pi variant placeholder)
	0x77: 0x03C9, // omega
	0x78: 0x03BE, // xi
	0x79: 0x03C8, // psi
	0x7A: 0x03B6, // zeta

	// Mathematical operators, 0x20..0x40 / 0x5B..0x60 / 0x7B..0x7E.
	0x22: 0x2200, // for all
	0x24: 0x2203, // there exists
	0x27: 0x220B, // contains as member
	0x2A: 0x2217, // asterisk operator
	0x2D: 0x2212, // minus sign

	// Relational and logical operators, 0xA0..0xFE.
	0xA3: 0x2264, // less-than or equal to
	0xB3: 0x2265, // greater-than or equal to
	0xB8: 0x00F7, // division sign
	0xB9: 0x2260, // not equal to
	0xBB: 0x2261, // identical to
	0xD6: 0x221A, // square root
	0xD7: 0x22C5, // dot operator
	0xD8: 0x00AC, // not sign
	0xD9: 0x2227, // logical and
	0xDA: 0x2228, // logical or
	0xE0: 0x25CA, // lozenge
}
