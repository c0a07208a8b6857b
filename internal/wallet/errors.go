package wallet

import "fmt"

// NotFoundError reports that no signer file could be located or read.
type NotFoundError struct {
	Path string // path that failed to read; empty when discovery was exhausted
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("signer not found: %s", e.Path)
	}
	return "signer not found"
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// WordCountError reports a phrase with the wrong number of words.
type WordCountError struct {
	Count int
}

func (e *WordCountError) Error() string {
	return fmt.Sprintf("expected 12 or 24 words, got %d", e.Count)
}

// MnemonicError reports a phrase that failed wordlist or checksum validation.
type MnemonicError struct {
	Err error
}

func (e *MnemonicError) Error() string { return fmt.Sprintf("invalid mnemonic: %v", e.Err) }

func (e *MnemonicError) Unwrap() error { return e.Err }

// DeriveError reports a failure in hierarchical key derivation.
type DeriveError struct {
	Err error
}

func (e *DeriveError) Error() string { return fmt.Sprintf("derivation failed: %v", e.Err) }

func (e *DeriveError) Unwrap() error { return e.Err }
