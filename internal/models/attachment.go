package models

import (
	"fmt"
	"path"
	"time"
)

type AttachmentType string

const (
	AttachmentPhoto     AttachmentType = "PHOTO"
	AttachmentVideo     AttachmentType = "VIDEO"
	AttachmentVoiceNote AttachmentType = "VOICE_NOTE"
	AttachmentDocument  AttachmentType = "DOCUMENT"
	AttachmentOther     AttachmentType = "OTHER"
)

// MaxUploadSize - предел размера одного файла, файлы больше никогда не отправляются
const MaxUploadSize int64 = 10 * 1024 * 1024

type Attachment struct {
	ID          ID             `json:"id"`
	IncidentID  ID             `json:"incident,omitempty"`
	File        string         `json:"file"`
	FileURL     string         `json:"file_url,omitempty"`
	FileName    string         `json:"filename,omitempty"`
	FileSize    int64          `json:"file_size,omitempty"`
	Type        AttachmentType `json:"attachment_type"`
	Description string         `json:"description,omitempty"`
	UploadedAt  *time.Time     `json:"uploaded_at,omitempty"`
}

// DisplayName возвращает имя файла без пути
func (a *Attachment) DisplayName() string {
	if a.FileName != "" {
		return a.FileName
	}
	if a.File == "" {
		return ""
	}
	return path.Base(a.File)
}

func (a *Attachment) HumanSize() string {
	return HumanSize(a.FileSize)
}

func HumanSize(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f TB", size)
}
