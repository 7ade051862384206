package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FileInfo describes a PDF container as seen by pdfcpu, without
// extracting any text from it.
type FileInfo struct {
	PageCount int
	PageDims  []BoundingBox
	Encrypted bool
}

// ValidateFile opens and validates a PDF container with pdfcpu. The
// glyph backends report little about why a file failed to open, so
// this is where an unreadable file is diagnosed into the sentinel
// error taxonomy: ErrNotReadable, ErrEncrypted or ErrCorrupt.
func ValidateFile(filepath string) (*FileInfo, error) {
	return ValidateFileWithPassword(filepath, "")
}

// ValidateFileWithPassword validates a possibly password-protected PDF
func ValidateFileWithPassword(filepath string, password string) (*FileInfo, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotReadable, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		if isEncryptionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrEncrypted, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotReadable, err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		if isEncryptionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrEncrypted, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	info := &FileInfo{
		PageCount: ctx.PageCount,
		Encrypted: ctx.E != nil,
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read page dimensions: %v", ErrCorrupt, err)
	}
	for _, dim := range dims {
		info.PageDims = append(info.PageDims, BoundingBox{X1: dim.Width, Y1: dim.Height})
	}

	return info, nil
}

// isEncryptionError sniffs pdfcpu's error text for encryption causes.
// pdfcpu does not export a sentinel for this condition.
func isEncryptionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "encrypt") || strings.Contains(msg, "password")
}
