package assist

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

// MediaFile is a local media file selected for analysis.
type MediaFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

// LoadMediaFile reads a file from disk and detects its media type from
// the extension.
func LoadMediaFile(path string) (MediaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MediaFile{}, fmt.Errorf("read media file: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return MediaFile{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	}, nil
}

// AnalyzeVideo extracts key educational points from a video file. The
// file is checked for type and size before upload; failures of any kind
// come back as the localized video failure text plus the error marker.
func (c *Client) AnalyzeVideo(ctx context.Context, file MediaFile, lang catalog.Language) (string, error) {
	if c.provider == nil {
		return notConfiguredText(lang), ErrNotConfigured
	}

	if !strings.HasPrefix(file.MIMEType, "video/") {
		return videoErrorText(lang), &llm.ErrUnsupportedMedia{
			MIMEType: file.MIMEType,
			Size:     len(file.Data),
			Err:      fmt.Errorf("not a video file"),
		}
	}
	if len(file.Data) > c.cfg.MaxMediaBytes {
		return videoErrorText(lang), &llm.ErrUnsupportedMedia{
			MIMEType: file.MIMEType,
			Size:     len(file.Data),
			Err:      fmt.Errorf("exceeds %d byte inline limit", c.cfg.MaxMediaBytes),
		}
	}

	ctx = llm.WithPurpose(ctx, "video-analysis")

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVideoPrompt(lang)},
		},
		Media: &llm.Media{
			MIMEType: file.MIMEType,
			Data:     file.Data,
		},
		Model:     c.cfg.VideoModel,
		MaxTokens: c.cfg.VideoMaxTokens,
	})
	if err != nil {
		return videoErrorText(lang), err
	}

	return rawText(resp), nil
}
