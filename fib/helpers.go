package fib

// Flags1 bit positions within FibBase (MS-DOC FIB layout).
const (
	flagTemplate    = 0x0001
	flagGlsy        = 0x0002
	flagComplex     = 0x0004
	flagHasPic      = 0x0008
	flagEncrypted   = 0x0100
	flagWhichTblStm = 0x0200
	flagReadOnlyRec = 0x0400
	flagWriteReserv = 0x0800
	flagObfuscated  = 0x1000
)

// IsEncrypted reports whether the document requires a decryption cipher
// before its text streams can be read.
func (f *FileInformationBlock) IsEncrypted() bool {
	return f.Base.Flags1&flagEncrypted != 0
}

// IsObfuscated reports whether the document uses the weaker XOR
// obfuscation scheme instead of full RC4 encryption.
func (f *FileInformationBlock) IsObfuscated() bool {
	return f.Base.Flags1&flagObfuscated != 0
}

// GetTableStreamName returns which of the "0Table"/"1Table" streams
// holds this document's formatting tables, per the fWhichTblStm flag.
func (f *FileInformationBlock) GetTableStreamName() string {
	if f.Base.Flags1&flagWhichTblStm != 0 {
		return "1Table"
	}
	return "0Table"
}
