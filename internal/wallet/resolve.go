package wallet

import (
	"os"
	"path/filepath"
)

// SignerFileName is the filename automatic discovery looks for.
const SignerFileName = "signer.txt"

// searchDepth caps discovery at this many directories, the starting
// directory included.
const searchDepth = 6

// Resolve locates signer material and derives a wallet from it. An explicit
// path is used unconditionally; otherwise the working directory and up to
// five parents are searched for signer.txt.
func Resolve(explicit string) (*Wallet, error) {
	path := explicit
	if path == "" {
		found, err := findSigner()
		if err != nil {
			return nil, err
		}
		path = found
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return FromMnemonic(string(raw))
}

func findSigner() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", &NotFoundError{Err: err}
	}
	for i := 0; i < searchDepth; i++ {
		candidate := filepath.Join(dir, SignerFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", &NotFoundError{}
}
