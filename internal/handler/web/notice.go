package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/models"
)

type notice struct {
	Kind    string // success или error
	Message string
}

const (
	noticeCreated                = "created"
	noticeUpdated                = "updated"
	noticeDeleted                = "deleted"
	noticeDeleteFailed           = "delete_failed"
	noticeAttachmentDeleted      = "attachment_deleted"
	noticeAttachmentDeleteFailed = "attachment_delete_failed"
)

var notices = map[string]notice{
	noticeCreated:                {Kind: "success", Message: "Incident created."},
	noticeUpdated:                {Kind: "success", Message: "Incident updated."},
	noticeDeleted:                {Kind: "success", Message: "Incident deleted."},
	noticeDeleteFailed:           {Kind: "error", Message: "Delete failed."},
	noticeAttachmentDeleted:      {Kind: "success", Message: "Attachment deleted."},
	noticeAttachmentDeleteFailed: {Kind: "error", Message: "Attachment delete failed."},
}

func errorNotice(err error) *notice {
	return &notice{Kind: "error", Message: describeError(err)}
}

// noticeFromQuery восстанавливает уведомление после редиректа.
// Принимаются только известные коды, произвольный текст из URL не выводится.
func noticeFromQuery(c *gin.Context) *notice {
	n, ok := notices[c.Query("notice")]
	if !ok {
		return nil
	}
	var extra []string
	if skipped, _ := strconv.Atoi(c.Query("skipped")); skipped > 0 {
		extra = append(extra, fmt.Sprintf("%s skipped (over %s).", plural(skipped, "file"), models.HumanSize(models.MaxUploadSize)))
	}
	if failed, _ := strconv.Atoi(c.Query("failed")); failed > 0 {
		extra = append(extra, fmt.Sprintf("%s failed to upload.", plural(failed, "file")))
	}
	if len(extra) > 0 {
		n.Message += " " + strings.Join(extra, " ")
	}
	return &n
}

// submissionNotice кодирует итог отправки формы в параметры редиректа
func submissionNotice(code string, sub *models.Submission) url.Values {
	q := url.Values{"notice": {code}}
	if n := sub.Count(models.UploadSkipped); n > 0 {
		q.Set("skipped", strconv.Itoa(n))
	}
	if n := sub.Count(models.UploadFailed); n > 0 {
		q.Set("failed", strconv.Itoa(n))
	}
	return q
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
