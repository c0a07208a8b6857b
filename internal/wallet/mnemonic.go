package wallet

import (
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
)

// normalize trims the phrase and collapses internal whitespace, newlines
// included, to single spaces.
func normalize(words string) (string, int) {
	fields := strings.Fields(words)
	return strings.Join(fields, " "), len(fields)
}

// seedFromMnemonic validates the phrase against the English wordlist and
// checksum, then stretches it into a 64-byte seed. The passphrase is always
// empty: a passphrase changes the derived wallet, so adding one later has to
// be an explicit input, never a default.
func seedFromMnemonic(words string) ([]byte, error) {
	clean, count := normalize(words)
	if count != 12 && count != 24 {
		return nil, &WordCountError{Count: count}
	}
	seed, err := bip39.NewSeedWithErrorChecking(clean, "")
	if err != nil {
		return nil, &MnemonicError{Err: err}
	}
	return seed, nil
}
