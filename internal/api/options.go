package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"
)

// RequestOptions describes one outgoing call. The zero value is a GET with
// no query, body or extra headers.
type RequestOptions struct {
	// Method is the HTTP method; empty means GET.
	Method string
	// Params are query parameters, encoded in insertion order.
	Params Params
	// Body is JSON-serialised unless it is a *FormPayload, in which case
	// it is passed through unmodified.
	Body any
	// Headers are caller overrides. They win over anything the client
	// would set automatically (Content-Type, Authorization).
	Headers map[string]string
}

// Param is one query parameter entry.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered query-parameter list. Entries with a nil value are
// dropped; falsy-but-defined values (0, "", false) are kept.
type Params []Param

// With appends an entry and returns the extended list.
func (p Params) With(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode renders the list as a query string without the leading "?".
func (p Params) Encode() string {
	var b strings.Builder
	for _, entry := range p {
		if entry.Value == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(entry.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(entry.Value)))
	}
	return b.String()
}

// PageParams is the pagination parameter pair shared by list endpoints.
type PageParams struct {
	Page     int
	PageSize int
}

// apply appends page/pageSize when set. A zero page means "let the backend
// default", matching the original calls which omit the parameters entirely.
func (pp PageParams) apply(p Params) Params {
	if pp.Page > 0 {
		p = p.With("page", pp.Page)
	}
	if pp.PageSize > 0 {
		p = p.With("pageSize", pp.PageSize)
	}
	return p
}

// FormPayload is a binary request body that carries its own content type.
// The client never forces Content-Type for it, so multipart boundaries
// survive intact.
type FormPayload struct {
	ContentType string
	Reader      io.Reader
}

// NewFileForm builds a multipart form with a single file field, the shape
// the backend's upload endpoint expects.
func NewFileForm(field, filename string, r io.Reader) (*FormPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file contents: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}
	return &FormPayload{ContentType: w.FormDataContentType(), Reader: &buf}, nil
}
