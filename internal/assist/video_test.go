package assist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

func TestAnalyzeVideo_SendsInlineMedia(t *testing.T) {
	c, mock := newTestClient(llm.MockResponse{Content: json.RawMessage(`Key points: ...`)})

	file := MediaFile{Name: "lecture.mp4", MIMEType: "video/mp4", Data: []byte{0, 1, 2}}
	result, err := c.AnalyzeVideo(context.Background(), file, catalog.LangEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Key points: ..." {
		t.Errorf("result = %q", result)
	}

	req := mock.Calls[0]
	if req.Media == nil {
		t.Fatal("expected media on request")
	}
	if req.Media.MIMEType != "video/mp4" {
		t.Errorf("media type = %q", req.Media.MIMEType)
	}
	if req.Model != "gemini-3-pro-preview" {
		t.Errorf("model = %q, want video model", req.Model)
	}
}

func TestAnalyzeVideo_RejectsNonVideoFile(t *testing.T) {
	c, mock := newTestClient()

	file := MediaFile{Name: "notes.txt", MIMEType: "text/plain", Data: []byte("hi")}
	text, err := c.AnalyzeVideo(context.Background(), file, catalog.LangEnglish)

	var unsup *llm.ErrUnsupportedMedia
	if !errors.As(err, &unsup) {
		t.Fatalf("err = %v, want ErrUnsupportedMedia", err)
	}
	if text != "Failed to analyze video. Please ensure the file is supported and size is appropriate." {
		t.Errorf("fallback text = %q", text)
	}
	if len(mock.Calls) != 0 {
		t.Error("provider should not be called for rejected media")
	}
}

func TestAnalyzeVideo_RejectsOversizedFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMediaBytes = 10
	mock := llm.NewMockProvider()
	c := New(mock, cfg)

	file := MediaFile{Name: "big.mp4", MIMEType: "video/mp4", Data: make([]byte, 11)}
	_, err := c.AnalyzeVideo(context.Background(), file, catalog.LangArabic)

	var unsup *llm.ErrUnsupportedMedia
	if !errors.As(err, &unsup) {
		t.Fatalf("err = %v, want ErrUnsupportedMedia", err)
	}
	if len(mock.Calls) != 0 {
		t.Error("provider should not be called for oversized media")
	}
}

func TestAnalyzeVideo_ProviderRejectionUsesLocalizedText(t *testing.T) {
	c, _ := newTestClient(llm.MockResponse{
		Err: &llm.ErrUnsupportedMedia{MIMEType: "video/mp4", Size: 3},
	})

	file := MediaFile{Name: "lecture.mp4", MIMEType: "video/mp4", Data: []byte{0, 1, 2}}
	text, err := c.AnalyzeVideo(context.Background(), file, catalog.LangArabic)
	if err == nil {
		t.Fatal("expected error")
	}
	if text != "فشل تحليل الفيديو. يرجى التأكد من أن الملف مدعوم وحجمه مناسب." {
		t.Errorf("fallback text = %q", text)
	}
}
