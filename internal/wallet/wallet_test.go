package wallet

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// Well-known all-zero-entropy BIP-39 vectors.
const (
	testMnemonic12 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testMnemonic24 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"

	// Derived at m/44'/501'/0'/0' from testMnemonic12.
	testPubkey12 = "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk"
)

func TestFromMnemonicGolden(t *testing.T) {
	w, err := FromMnemonic(testMnemonic12)
	if err != nil {
		t.Fatalf("expected wallet, got error: %v", err)
	}
	if w.PublicKey != testPubkey12 {
		t.Fatalf("expected pubkey %s, got %s", testPubkey12, w.PublicKey)
	}
	if len(w.PrivateKey) != 64 {
		t.Fatalf("expected 64-byte keypair, got %d bytes", len(w.PrivateKey))
	}
	if w.PrivateKey.PublicKey().String() != w.PublicKey {
		t.Fatalf("keypair public half does not match display pubkey")
	}
}

func TestFromMnemonicDeterministic(t *testing.T) {
	first, err := FromMnemonic(testMnemonic12)
	if err != nil {
		t.Fatalf("first derivation failed: %v", err)
	}
	second, err := FromMnemonic(testMnemonic12)
	if err != nil {
		t.Fatalf("second derivation failed: %v", err)
	}
	if !bytes.Equal(first.PrivateKey, second.PrivateKey) {
		t.Fatalf("derivation is not deterministic")
	}
	if first.PublicKey != second.PublicKey {
		t.Fatalf("pubkey strings differ: %s vs %s", first.PublicKey, second.PublicKey)
	}
}

func TestFromMnemonic24Words(t *testing.T) {
	w, err := FromMnemonic(testMnemonic24)
	if err != nil {
		t.Fatalf("expected wallet from 24-word phrase, got error: %v", err)
	}
	if w.PublicKey == testPubkey12 {
		t.Fatalf("24-word phrase derived the 12-word wallet")
	}
}

func TestFromMnemonicNormalizesWhitespace(t *testing.T) {
	messy := "  " + strings.ReplaceAll(testMnemonic12, " ", "\n") + "\n"
	w, err := FromMnemonic(messy)
	if err != nil {
		t.Fatalf("expected newline-separated phrase to derive, got: %v", err)
	}
	if w.PublicKey != testPubkey12 {
		t.Fatalf("expected pubkey %s, got %s", testPubkey12, w.PublicKey)
	}
}

func TestFromMnemonicWordCount(t *testing.T) {
	for _, count := range []int{11, 13, 25} {
		phrase := strings.TrimSpace(strings.Repeat("abandon ", count))
		_, err := FromMnemonic(phrase)
		var wcErr *WordCountError
		if !errors.As(err, &wcErr) {
			t.Fatalf("%d words: expected WordCountError, got %v", count, err)
		}
		if wcErr.Count != count {
			t.Fatalf("expected reported count %d, got %d", count, wcErr.Count)
		}
	}
}

func TestFromMnemonicUnknownWord(t *testing.T) {
	phrase := strings.Replace(testMnemonic12, "about", "zzzzzz", 1)
	_, err := FromMnemonic(phrase)
	var mnErr *MnemonicError
	if !errors.As(err, &mnErr) {
		t.Fatalf("expected MnemonicError for unknown word, got %v", err)
	}
}

func TestFromMnemonicBadChecksum(t *testing.T) {
	// All words valid, checksum wrong.
	phrase := strings.TrimSpace(strings.Repeat("abandon ", 12))
	_, err := FromMnemonic(phrase)
	var mnErr *MnemonicError
	if !errors.As(err, &mnErr) {
		t.Fatalf("expected MnemonicError for bad checksum, got %v", err)
	}
}

func TestParsePath(t *testing.T) {
	indices, err := parsePath(DerivationPath)
	if err != nil {
		t.Fatalf("constant path failed to parse: %v", err)
	}
	want := []uint32{44 | hardenedOffset, 501 | hardenedOffset, hardenedOffset, hardenedOffset}
	if len(indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(indices))
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("index %d: expected %#x, got %#x", i, want[i], indices[i])
		}
	}
}

func TestParsePathRejectsNonHardened(t *testing.T) {
	if _, err := parsePath("m/44'/501'/0'/0"); err == nil {
		t.Fatalf("expected error for non-hardened segment")
	}
	if _, err := parsePath("44'/501'"); err == nil {
		t.Fatalf("expected error for missing m/ prefix")
	}
}
