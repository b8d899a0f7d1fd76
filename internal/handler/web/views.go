package web

import (
	"strings"

	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/models"
)

type listPage struct {
	Search    string
	Page      int
	PrevURL   string
	NextURL   string
	Rows      []row
	Shown     int
	Total     int
	LoadError string
	Notice    *notice
	Detail    *detailView
}

type row struct {
	Index      int
	ID         models.ID
	Title      string
	When       string
	Facility   string
	Category   string
	ReportedBy string
	Files      int
	ToggleURL  string
	ViewURL    string
	EditURL    string
	DeleteURL  string
	Panel      *panelView
}

// panelView - панель вложений в одном из состояний loading, empty, populated, failed
type panelView struct {
	IncidentID  models.ID
	State       string
	FragmentURL string
	Cards       []card
	Error       string
}

type card struct {
	Name      string
	URL       string
	Type      string
	Size      string
	DeleteURL string
}

type detailField struct {
	Label string
	Value string
}

type detailView struct {
	ID       models.ID
	Number   string
	Error    string
	Fields   []detailField
	Panel    *panelView
	CloseURL string
	EditURL  string
}

type formPage struct {
	Heading   string
	Action    string
	Submit    string
	Draft     *models.Draft
	Choices   *models.ChoiceSet
	Missing   map[string]bool
	Notice    *notice
	LoadError string
	CancelURL string
	MaxUpload string
}

type confirmPage struct {
	Heading string
	Message string
	Action  string
	Return  string
	Hidden  map[string]string
}

const (
	panelLoading   = "loading"
	panelEmpty     = "empty"
	panelPopulated = "populated"
	panelFailed    = "failed"
)

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func newRow(index int, inc *models.Incident) row {
	when := "-"
	if inc.Date != "" {
		when = strings.TrimSpace(inc.Date + " " + inc.Time)
	}
	return row{
		Index:      index,
		ID:         inc.ID,
		Title:      dash(inc.Title),
		When:       when,
		Facility:   dash(inc.Facility),
		Category:   dash(inc.Category),
		ReportedBy: dash(inc.ReportedByName),
		Files:      inc.NumAttachments(),
		EditURL:    incidentPath(inc.ID, "/edit"),
	}
}

// loadingPanel откладывает запрос вложений до того, как браузер запросит фрагмент
func loadingPanel(incidentID models.ID, returnTo string) *panelView {
	return &panelView{
		IncidentID:  incidentID,
		State:       panelLoading,
		FragmentURL: fragmentURL(incidentID, returnTo),
	}
}

// attachmentsPanel подписывает типы вложений по разрешенному набору choices
func (h *Handler) attachmentsPanel(incidentID models.ID, list []*models.Attachment, set *models.ChoiceSet, returnTo string) *panelView {
	panel := &panelView{IncidentID: incidentID, State: panelEmpty}
	for _, a := range list {
		if a == nil {
			continue
		}
		fileURL := a.FileURL
		if fileURL == "" {
			fileURL = apiclient.MediaURL(h.cfg.MediaBaseURL, incidentID, a.File)
		}
		panel.Cards = append(panel.Cards, card{
			Name:      dash(a.DisplayName()),
			URL:       fileURL,
			Type:      models.Label(set.AttachmentTypes, string(a.Type)),
			Size:      a.HumanSize(),
			DeleteURL: attachmentDeleteURL(a, incidentID, returnTo),
		})
	}
	if len(panel.Cards) > 0 {
		panel.State = panelPopulated
	}
	return panel
}

func detailFields(inc *models.Incident, set *models.ChoiceSet) []detailField {
	label := func(list []models.Choice, v string) string {
		if v == "" {
			return "-"
		}
		return models.Label(list, v)
	}
	when := "-"
	if inc.Date != "" {
		when = strings.TrimSpace(inc.Date + " " + inc.Time)
	}
	reportedBy := "-"
	if inc.ReportedByType != "" || inc.ReportedByName != "" {
		reportedBy = label(set.ReportedByTypes, inc.ReportedByType) + " - " + dash(inc.ReportedByName)
	}

	return []detailField{
		{Label: "Title", Value: dash(inc.Title)},
		{Label: "Date/Time", Value: when},
		{Label: "Facility", Value: dash(inc.Facility)},
		{Label: "Department", Value: dash(inc.Department)},
		{Label: "Site", Value: dash(inc.Site)},
		{Label: "Category", Value: label(set.Categories, inc.Category)},
		{Label: "Sub-category", Value: label(set.SubCategories, inc.SubCategory)},
		{Label: "Description", Value: dash(inc.Description)},
		{Label: "Persons Involved Type", Value: label(set.PersonTypes, inc.PersonsInvolvedType)},
		{Label: "Persons Involved Details", Value: dash(inc.PersonsInvolvedDetails)},
		{Label: "Injury/Damage Type", Value: label(set.InjuryDamageTypes, inc.InjuryDamageType)},
		{Label: "Injury/Damage Details", Value: dash(inc.InjuryDamageDetails)},
		{Label: "Waste Type", Value: label(set.WasteTypes, inc.WasteType)},
		{Label: "Waste Category Code", Value: dash(inc.WasteCategoryCode)},
		{Label: "Reported By", Value: reportedBy},
		{Label: "Contact", Value: dash(inc.ReportedByContact)},
	}
}
