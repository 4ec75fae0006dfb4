package msword

import (
	"fmt"

	"github.com/Distrotech/libmwaw-sub009/crypto"
	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

// encryptionHeaderOffset is the size of the EncryptionVersionInfo field
// (2 bytes major + 2 bytes minor) that precedes the EncryptionHeader
// proper at the start of an encrypted table stream.
const encryptionHeaderOffset = 4

// buildCipher parses the EncryptionHeader from the start of tableStream
// and, given password, builds the RC4 cipher used to decrypt every
// piece not marked FNoEncryption. Returns UnsupportedEncryption if no
// password was supplied, WrongPassword if verification fails.
func buildCipher(tableStream []byte, password string) (*crypto.RC4, error) {
	if len(tableStream) < encryptionHeaderOffset {
		return nil, mwawerr.New(mwawerr.Truncated, "msword.buildCipher", fmt.Errorf("table stream too small for encryption header"))
	}
	header, err := crypto.ParseEncryptionHeader(tableStream[encryptionHeaderOffset:])
	if err != nil {
		return nil, mwawerr.New(mwawerr.MalformedZone, "msword.buildCipher", err)
	}
	if password == "" {
		return nil, mwawerr.New(mwawerr.UnsupportedEncryption, "msword.buildCipher", fmt.Errorf("document is password-protected; no password supplied"))
	}
	cipher, err := header.CreateDecryptionCipher(password)
	if err != nil {
		return nil, mwawerr.New(mwawerr.WrongPassword, "msword.buildCipher", err)
	}
	return cipher, nil
}
