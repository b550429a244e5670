// Package tlscert provides TLS certificate management for DocFold.
package tlscert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeKeyPair writes a self-signed certificate and key for cn into dir.
func writeKeyPair(t *testing.T, dir, cn string) (certFile, keyFile string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}

	certFile = filepath.Join(dir, "tls.crt")
	keyFile = filepath.Join(dir, "tls.key")

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(certFile, certPEM, 0o600); err != nil {
		t.Fatalf("write cert: %v", err)
	}

	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	if err := os.WriteFile(keyFile, keyPEM, 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	return certFile, keyFile
}

func TestNewWatcher_LoadsInitialCertificate(t *testing.T) {
	certFile, keyFile := writeKeyPair(t, t.TempDir(), "docfold.test")

	w, err := NewWatcher(certFile, keyFile, WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	cert, err := w.GetCertificate(nil)
	if err != nil {
		t.Fatalf("GetCertificate: %v", err)
	}
	if cert == nil {
		t.Fatal("GetCertificate returned nil certificate")
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		t.Fatalf("parse leaf: %v", err)
	}
	if leaf.Subject.CommonName != "docfold.test" {
		t.Errorf("CommonName = %q", leaf.Subject.CommonName)
	}
}

func TestNewWatcher_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := NewWatcher(filepath.Join(dir, "a.crt"), filepath.Join(dir, "a.key"))
	if err == nil {
		t.Error("NewWatcher succeeded with missing files")
	}
}

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	certFile, keyFile := writeKeyPair(t, dir, "first")

	w, err := NewWatcher(certFile, keyFile, WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// Overwrite with a new key pair and reload.
	writeKeyPair(t, dir, "second")
	if err := w.reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	cert, _ := w.GetCertificate(nil)
	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		t.Fatalf("parse leaf: %v", err)
	}
	if leaf.Subject.CommonName != "second" {
		t.Errorf("CommonName after reload = %q, want second", leaf.Subject.CommonName)
	}
}
