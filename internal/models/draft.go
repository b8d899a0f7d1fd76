package models

import (
	"io"
	"mime/multipart"
	"strings"
)

// Draft - редактируемые поля инцидента, собранные формой создания или редактирования.
// При создании отправляется целиком, при редактировании - как частичное обновление.
type Draft struct {
	Title string `json:"incident_title" form:"incident_title" validate:"required"`
	Date  string `json:"date_of_incident" form:"date_of_incident" validate:"required"`
	Time  string `json:"time_of_incident" form:"time_of_incident" validate:"required"`

	Facility   string `json:"facility" form:"facility"`
	Department string `json:"department" form:"department"`
	Site       string `json:"site" form:"site"`

	Category    string `json:"category" form:"category"`
	SubCategory string `json:"sub_category" form:"sub_category"`
	Description string `json:"description" form:"description"`

	PersonsInvolvedType    string `json:"persons_involved_type" form:"persons_involved_type" validate:"required"`
	PersonsInvolvedDetails string `json:"persons_involved_details" form:"persons_involved_details"`

	InjuryDamageType    string `json:"injury_damage_type" form:"injury_damage_type" validate:"required"`
	InjuryDamageDetails string `json:"injury_damage_details" form:"injury_damage_details"`

	WasteType         string `json:"waste_type" form:"waste_type"`
	WasteCategoryCode string `json:"waste_category_code" form:"waste_category_code"`

	ReportedByType    string `json:"reported_by_type" form:"reported_by_type"`
	ReportedByName    string `json:"reported_by_name" form:"reported_by_name"`
	ReportedByContact string `json:"reported_by_contact" form:"reported_by_contact"`
}

// NewDraft возвращает пустой черновик для новой формы создания
func NewDraft() *Draft {
	return &Draft{WasteType: WasteNotApplicable}
}

// DraftFromIncident копирует редактируемые поля существующей записи
func DraftFromIncident(i *Incident) *Draft {
	d := &Draft{
		Title:                  i.Title,
		Date:                   i.Date,
		Time:                   i.Time,
		Facility:               i.Facility,
		Department:             i.Department,
		Site:                   i.Site,
		Category:               i.Category,
		SubCategory:            i.SubCategory,
		Description:            i.Description,
		PersonsInvolvedType:    i.PersonsInvolvedType,
		PersonsInvolvedDetails: i.PersonsInvolvedDetails,
		InjuryDamageType:       i.InjuryDamageType,
		InjuryDamageDetails:    i.InjuryDamageDetails,
		WasteType:              i.WasteType,
		WasteCategoryCode:      i.WasteCategoryCode,
		ReportedByType:         i.ReportedByType,
		ReportedByName:         i.ReportedByName,
		ReportedByContact:      i.ReportedByContact,
	}
	if d.WasteType == "" {
		d.WasteType = WasteNotApplicable
	}
	return d
}

// Trim обрезает пробелы во всех полях, чтобы пустое значение не прошло проверку на заполненность
func (d *Draft) Trim() {
	for _, f := range []*string{
		&d.Title, &d.Date, &d.Time,
		&d.Facility, &d.Department, &d.Site,
		&d.Category, &d.SubCategory, &d.Description,
		&d.PersonsInvolvedType, &d.PersonsInvolvedDetails,
		&d.InjuryDamageType, &d.InjuryDamageDetails,
		&d.WasteType, &d.WasteCategoryCode,
		&d.ReportedByType, &d.ReportedByName, &d.ReportedByContact,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// PendingFile - выбранный в форме, но еще не загруженный файл.
// Open вызывается только для файлов, которые проходят по размеру.
type PendingFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// PendingFromHeader оборачивает файл из multipart-формы
func PendingFromHeader(fh *multipart.FileHeader) PendingFile {
	return PendingFile{
		Name: fh.Filename,
		Size: fh.Size,
		Open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}

// PendingFromForm собирает файлы поля field в порядке выбора.
// Части без имени файла (пустой выбор в форме) пропускаются.
func PendingFromForm(form *multipart.Form, field string) []PendingFile {
	if form == nil {
		return nil
	}
	var files []PendingFile
	for _, fh := range form.File[field] {
		if fh == nil || fh.Filename == "" {
			continue
		}
		files = append(files, PendingFromHeader(fh))
	}
	return files
}

type UploadStatus string

const (
	UploadUploaded UploadStatus = "uploaded"
	UploadSkipped  UploadStatus = "skipped"
	UploadFailed   UploadStatus = "failed"
)

type UploadOutcome struct {
	FileName   string       `json:"file_name"`
	Size       int64        `json:"size"`
	Status     UploadStatus `json:"status"`
	Error      string       `json:"error,omitempty"`
	Attachment *Attachment  `json:"attachment,omitempty"`
}

// Submission - двухфазный результат отправки формы: запись инцидента,
// затем по одному исходу на каждый выбранный файл в порядке выбора.
type Submission struct {
	Record  *Incident       `json:"record"`
	Uploads []UploadOutcome `json:"uploads"`
}

// Count возвращает число загрузок с данным статусом
func (s *Submission) Count(status UploadStatus) int {
	n := 0
	for _, u := range s.Uploads {
		if u.Status == status {
			n++
		}
	}
	return n
}
