package helper

import (
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hrdelegation_backend/internals/constants"
)

// ValidateDelegationFile: cek tipe + ukuran dokumen delegasi SEBELUM ada
// round-trip ke storage/DB. Hanya PDF dan maksimal 5MB; selain itu ditolak
// dengan pesan untuk user (422), bukan error generic.
func ValidateDelegationFile(fh *multipart.FileHeader) error {
	if fh == nil {
		return nil
	}

	ct := fh.Header.Get(fiber.HeaderContentType)
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		ct = mt
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ct != constants.DelegationFileContentType || ext != ".pdf" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "يرجى اختيار ملف PDF فقط")
	}

	if fh.Size > constants.DelegationFileMaxSizeBytes {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "يجب أن لا يتجاوز حجم الملف 5 ميجابايت")
	}
	return nil
}
