package helper

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set(fiber.HeaderContentType, contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   h,
		Size:     size,
	}
}

func TestValidateDelegationFile(t *testing.T) {
	cases := []struct {
		name     string
		fh       *multipart.FileHeader
		wantCode int // 0 = lolos
	}{
		{"nil file", nil, 0},
		{"pdf kecil", fileHeader("surat.pdf", "application/pdf", 1024), 0},
		{"pdf 4MB", fileHeader("surat.pdf", "application/pdf", 4*1024*1024), 0},
		{"pdf pas 5MB", fileHeader("surat.pdf", "application/pdf", 5*1024*1024), 0},
		{"pdf 6MB", fileHeader("surat.pdf", "application/pdf", 6*1024*1024), fiber.StatusUnprocessableEntity},
		{"docx kecil", fileHeader("surat.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 100), fiber.StatusUnprocessableEntity},
		{"png kecil", fileHeader("scan.png", "image/png", 100), fiber.StatusUnprocessableEntity},
		{"ekstensi pdf tapi content-type bukan", fileHeader("surat.pdf", "image/png", 100), fiber.StatusUnprocessableEntity},
		{"content-type pdf tapi ekstensi bukan", fileHeader("surat.exe", "application/pdf", 100), fiber.StatusUnprocessableEntity},
		{"content-type dengan parameter", fileHeader("surat.pdf", "application/pdf; charset=binary", 2048), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateDelegationFile(c.fh)
			if c.wantCode == 0 {
				if err != nil {
					t.Fatalf("harus lolos, dapat error: %v", err)
				}
				return
			}
			fe, ok := err.(*fiber.Error)
			if !ok {
				t.Fatalf("harus *fiber.Error, dapat %T (%v)", err, err)
			}
			if fe.Code != c.wantCode {
				t.Errorf("code = %d, want %d", fe.Code, c.wantCode)
			}
		})
	}
}
