package api

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestParamsEncode_OrderAndEscaping(t *testing.T) {
	p := Params{}.
		With("b", 2).
		With("a", 1).
		With("name", "summer sale")
	if got := p.Encode(); got != "b=2&a=1&name=summer+sale" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestParamsEncode_Empty(t *testing.T) {
	if got := (Params{}).Encode(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := (Params{}.With("only", nil)).Encode(); got != "" {
		t.Fatalf("nil-only params should encode empty, got %q", got)
	}
}

func TestPageParams_Apply(t *testing.T) {
	p := PageParams{Page: 2, PageSize: 50}.apply(nil)
	if got := p.Encode(); got != "page=2&pageSize=50" {
		t.Fatalf("unexpected encoding: %q", got)
	}
	if got := (PageParams{}).apply(nil).Encode(); got != "" {
		t.Fatalf("zero page params should be omitted, got %q", got)
	}
}

func TestNewFileForm_RoundTrip(t *testing.T) {
	form, err := NewFileForm("file", "clip.mp4", strings.NewReader("videobytes"))
	if err != nil {
		t.Fatalf("NewFileForm: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(form.ContentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("unexpected content type %q: %v", form.ContentType, err)
	}

	reader := multipart.NewReader(form.Reader, params["boundary"])
	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("read part: %v", err)
	}
	if part.FormName() != "file" || part.FileName() != "clip.mp4" {
		t.Fatalf("unexpected part: name=%q file=%q", part.FormName(), part.FileName())
	}
	contents, _ := io.ReadAll(part)
	if string(contents) != "videobytes" {
		t.Fatalf("unexpected contents: %q", contents)
	}
}
