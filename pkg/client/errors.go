package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"path"
	"strings"
)

var (
	// ErrLogoTooLarge means the logo exceeds the backend's 5MB cap.
	ErrLogoTooLarge = errors.New("logo file exceeds 5MB")

	// ErrLogoType means the logo is neither JPEG nor PNG.
	ErrLogoType = errors.New("logo must be a JPEG or PNG file")
)

// StatusError is a non-2xx backend response. These are transient from the
// caller's point of view: the in-memory document is never replaced on one.
type StatusError struct {
	Op     string
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.Code)
}

func newStatusError(method, path string, resp *http.Response) *StatusError {
	se := &StatusError{
		Op:   method + " " + path,
		Code: resp.StatusCode,
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return se
	}
	var detail struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &detail) == nil && detail.Detail != "" {
		se.Detail = detail.Detail
	}
	return se
}

func logoContentType(filename string) (string, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image/png", nil
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	default:
		return "", ErrLogoType
	}
}

func logoPartHeader(filename, contentType string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	return h
}
