// Package wallet derives Solana signing keypairs from BIP-39 mnemonics and
// resolves the mnemonic source on disk.
//
// Derivation is fixed: English wordlist, empty passphrase, SLIP-0010 ed25519
// over m/44'/501'/0'/0'. Signer files hold mnemonic text only; JSON keypair
// arrays are not recognized and fail mnemonic validation.
package wallet

import (
	"crypto/ed25519"

	solana "github.com/gagliardetto/solana-go"
)

// Wallet is a derived signing keypair plus its display address.
type Wallet struct {
	PrivateKey solana.PrivateKey // 64 bytes: private scalar then public key
	PublicKey  string            // base58
}

// pathIndices is parsed once; DerivationPath is a constant, so a parse
// failure is a programming defect, not a runtime condition.
var pathIndices = mustParsePath(DerivationPath)

func mustParsePath(path string) []uint32 {
	indices, err := parsePath(path)
	if err != nil {
		panic("wallet: bad derivation path constant: " + err.Error())
	}
	return indices
}

// FromMnemonic derives the keypair for a 12- or 24-word phrase. The same
// phrase always yields the same keypair.
func FromMnemonic(words string) (*Wallet, error) {
	seed, err := seedFromMnemonic(words)
	if err != nil {
		return nil, err
	}
	scalar := deriveScalar(seed, pathIndices)
	key := solana.PrivateKey(ed25519.NewKeyFromSeed(scalar))
	return &Wallet{
		PrivateKey: key,
		PublicKey:  key.PublicKey().String(),
	}, nil
}
