// Package netx contains small HTTP body helpers.
package netx

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
)

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// MultipartFile builds a multipart/form-data body with a single file part.
// The part's Content-Type is sniffed from the first bytes of r.
// It returns the body and the Content-Type header value for the request.
func MultipartFile(field, filename string, r io.Reader) (*bytes.Buffer, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(filename)))
	h.Set("Content-Type", http.DetectContentType(head))

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("write part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}

	return body, mw.FormDataContentType(), nil
}
