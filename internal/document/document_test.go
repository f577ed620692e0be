package document_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/document"
)

func newService(t *testing.T) (*document.Service, string) {
	t.Helper()

	dir := t.TempDir()

	svc, err := document.NewService(dir, "http://localhost:8080/files/")
	require.NoError(t, err)

	return svc, dir
}

func TestUpload(t *testing.T) {
	svc, dir := newService(t)

	data := []byte("%PDF-1.4 test document")

	url, err := svc.Upload(data, "tenant-1/lease.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/tenant-1/lease.pdf", url)

	stored, err := os.ReadFile(filepath.Join(dir, "tenant-1", "lease.pdf"))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestUploadValidation(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name        string
		data        []byte
		path        string
		contentType string
		wantErr     error
	}{
		{
			name:        "oversized file",
			data:        bytes.Repeat([]byte("a"), document.MaxSize+1),
			path:        "big.pdf",
			contentType: "application/pdf",
			wantErr:     document.ErrTooLarge,
		},
		{
			name:        "disallowed type",
			data:        []byte("#!/bin/sh"),
			path:        "script.sh",
			contentType: "application/x-sh",
			wantErr:     document.ErrUnsupportedType,
		},
		{
			name:        "empty path",
			data:        []byte("%PDF-1.4"),
			path:        "",
			contentType: "application/pdf",
			wantErr:     document.ErrEmptyPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(tt.data, tt.path, tt.contentType)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadStripsTraversal(t *testing.T) {
	svc, dir := newService(t)

	_, err := svc.Upload([]byte("%PDF-1.4"), "../../etc/evil.pdf", "application/pdf")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "etc", "evil.pdf"))
	assert.NoError(t, err, "upload must land inside the storage root")
}

func TestDelete(t *testing.T) {
	svc, dir := newService(t)

	_, err := svc.Upload([]byte("%PDF-1.4"), "doc.pdf", "application/pdf")
	require.NoError(t, err)

	require.NoError(t, svc.Delete("doc.pdf"))

	_, err = os.Stat(filepath.Join(dir, "doc.pdf"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, svc.Delete("doc.pdf"), "deleting a missing file is fine")
}

func TestFileType(t *testing.T) {
	assert.Equal(t, "pdf", document.FileType("application/pdf"))
	assert.Equal(t, "document", document.FileType("application/msword"))
	assert.Equal(t, "image", document.FileType("image/png"))
	assert.Equal(t, "pdf", document.FileType("application/pdf; charset=binary"))
}
