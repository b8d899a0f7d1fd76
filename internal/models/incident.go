package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ID - непрозрачный идентификатор, назначаемый сервером. Сервис может прислать
// его строкой (uuid) или числом, оба варианта декодируются одинаково.
type ID string

func (id ID) String() string { return string(id) }

// IsZero сообщает, что идентификатор не задан
func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: unsupported json value %s", data)
	}
	*id = ID(n.String())
	return nil
}

const WasteNotApplicable = "NOT_APPLICABLE"

type Incident struct {
	ID             ID     `json:"id"`
	IncidentNumber string `json:"incident_number,omitempty"`

	Title string `json:"incident_title"`
	Date  string `json:"date_of_incident"`
	Time  string `json:"time_of_incident"`

	Facility   string `json:"facility"`
	Department string `json:"department"`
	Site       string `json:"site"`

	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Description string `json:"description"`

	PersonsInvolvedType    string `json:"persons_involved_type"`
	PersonsInvolvedDetails string `json:"persons_involved_details"`

	InjuryDamageType    string `json:"injury_damage_type"`
	InjuryDamageDetails string `json:"injury_damage_details"`

	WasteType         string `json:"waste_type"`
	WasteCategoryCode string `json:"waste_category_code"`

	ReportedByType    string `json:"reported_by_type"`
	ReportedByName    string `json:"reported_by_name"`
	ReportedByContact string `json:"reported_by_contact"`

	ReportingDate   *time.Time    `json:"reporting_date,omitempty"`
	AttachmentCount *int          `json:"attachment_count,omitempty"`
	Attachments     []*Attachment `json:"attachments,omitempty"`
	IsActive        *bool         `json:"is_active,omitempty"`
	CreatedAt       *time.Time    `json:"created_at,omitempty"`
	UpdatedAt       *time.Time    `json:"updated_at,omitempty"`
}

// NumAttachments возвращает счетчик вложений с сервера, а если его нет - длину вложенного списка
func (i *Incident) NumAttachments() int {
	if i.AttachmentCount != nil {
		return *i.AttachmentCount
	}
	return len(i.Attachments)
}

// IncidentPage - нормализованная страница списка инцидентов
type IncidentPage struct {
	Items []*Incident `json:"items"`
	Total int         `json:"total"`
}

// ListQuery - параметры списка. Пустой Search означает отсутствие фильтра
type ListQuery struct {
	Page   int
	Search string
}
