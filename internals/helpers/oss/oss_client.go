// internals/helpers/oss/oss_client.go
package helper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"hrdelegation_backend/internals/configs"
	"hrdelegation_backend/internals/constants"
)

// DocumentStorage: kontrak penyimpanan dokumen delegasi. Implementasi default
// pakai Aliyun OSS; test pakai fake in-memory.
type DocumentStorage interface {
	SaveDocument(ctx context.Context, fh *multipart.FileHeader, dir string) (key string, err error)
	OpenDocument(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteDocument(ctx context.Context, key string) error
}

// Error dipetakan controller ke 404/403 supaya user dapat pesan yang beda.
var (
	ErrObjectNotFound  = fmt.Errorf("oss: object not found")
	ErrObjectForbidden = fmt.Errorf("oss: access denied")
)

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "delegations/"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := configs.OSSEndpoint
	ak := configs.OSSAccessKey
	sk := configs.OSSSecretKey
	bucketName := configs.OSSBucketName
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// SaveDocument: upload PDF surat delegasi. Validasi tipe/ukuran SUDAH
// dilakukan di controller sebelum sampai sini.
func (s *OSSService) SaveDocument(ctx context.Context, fh *multipart.FileHeader, dir string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("empty file header")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open multipart: %w", err)
	}
	defer src.Close()

	key := s.buildObjectKey(dir, fh.Filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(constants.DelegationFileContentType),
		oss.ContentDisposition("inline"),
	}
	if err := s.Bucket.PutObject(key, src, opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return key, nil
}

func (s *OSSService) OpenDocument(ctx context.Context, key string) (io.ReadCloser, error) {
	if key == "" {
		return nil, ErrObjectNotFound
	}
	body, err := s.Bucket.GetObject(key, oss.WithContext(ctx))
	if err != nil {
		if e, ok := err.(oss.ServiceError); ok {
			switch e.StatusCode {
			case 404:
				return nil, ErrObjectNotFound
			case 403:
				return nil, ErrObjectForbidden
			}
		}
		return nil, fmt.Errorf("oss get: %w", err)
	}
	return body, nil
}

func (s *OSSService) DeleteDocument(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

/* =======================================================================
   Key helpers
======================================================================= */

func (s *OSSService) buildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102_150405")
	rand6 := randHex(3)

	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, d)
	}
	parts = append(parts, fmt.Sprintf("%s_%s_%s%s", slugify(base), ts, rand6, ext))
	return strings.Join(parts, "/")
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-", "—", "-", "–", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
