package crypto

import (
	"bytes"
	"testing"
)

func TestKCV_CorrectKeyVerifies(t *testing.T) {
	kc := NewKeyChecker()
	key := testKey(0x11)

	kcv, err := kc.GenerateKCV(key)
	if err != nil {
		t.Fatalf("GenerateKCV error: %v", err)
	}

	if !kc.VerifyKCV(key, kcv) {
		t.Fatalf("expected correct key to verify")
	}
}

func TestKCV_WrongKeyFails(t *testing.T) {
	kc := NewKeyChecker()

	kcv, err := kc.GenerateKCV(testKey(0x11))
	if err != nil {
		t.Fatalf("GenerateKCV error: %v", err)
	}

	if kc.VerifyKCV(testKey(0x22), kcv) {
		t.Fatalf("expected wrong key to fail")
	}
}

func TestKCV_FreshNoncePerGeneration(t *testing.T) {
	kc := NewKeyChecker()
	key := testKey(0x11)

	a, err := kc.GenerateKCV(key)
	if err != nil {
		t.Fatalf("GenerateKCV error: %v", err)
	}
	b, err := kc.GenerateKCV(key)
	if err != nil {
		t.Fatalf("GenerateKCV error: %v", err)
	}

	if bytes.Equal(a.IV, b.IV) {
		t.Fatalf("nonce reused across GenerateKCV calls")
	}
}

func TestKCV_CorruptBundleIsJustFalse(t *testing.T) {
	kc := NewKeyChecker()
	key := testKey(0x11)

	kcv, err := kc.GenerateKCV(key)
	if err != nil {
		t.Fatalf("GenerateKCV error: %v", err)
	}

	corrupt := kcv
	corrupt.Ciphertext = bytes.Clone(kcv.Ciphertext)
	corrupt.Ciphertext[0] ^= 0x01
	if kc.VerifyKCV(key, corrupt) {
		t.Fatalf("expected corrupt KCV to fail verification")
	}

	shortIV := kcv
	shortIV.IV = kcv.IV[:4]
	if kc.VerifyKCV(key, shortIV) {
		t.Fatalf("expected malformed IV to fail verification")
	}
}

func TestKCV_UnknownVersionFails(t *testing.T) {
	kc := NewKeyChecker()
	key := testKey(0x11)

	kcv, err := kc.GenerateKCV(key)
	if err != nil {
		t.Fatalf("GenerateKCV error: %v", err)
	}

	kcv.Version = 9
	if kc.VerifyKCV(key, kcv) {
		t.Fatalf("expected unknown KCV version to fail verification")
	}
}
