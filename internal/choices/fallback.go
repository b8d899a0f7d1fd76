// Package choices хранит статическую таблицу перечислений, которая
// подставляется, когда сервис не отдает /incidents/choices/.
package choices

import "github.com/shenikar/incident_console/internal/models"

// Fallback возвращает новую копию статической таблицы
func Fallback() *models.ChoiceSet {
	return &models.ChoiceSet{
		Categories: []models.Choice{
			{Value: "INCIDENT", Label: "Incident"},
			{Value: "NEAR_MISS", Label: "Near-Miss"},
			{Value: "UNSAFE_ACT", Label: "Unsafe Act"},
			{Value: "UNSAFE_CONDITION", Label: "Unsafe Condition"},
		},
		SubCategories: []models.Choice{
			{Value: "FIRE", Label: "Fire"},
			{Value: "SPILL", Label: "Spill"},
			{Value: "EXPOSURE", Label: "Exposure"},
			{Value: "EQUIPMENT_FAILURE", Label: "Equipment Failure"},
			{Value: "CHEMICAL_LEAK", Label: "Chemical Leak"},
			{Value: "EXPLOSION", Label: "Explosion"},
			{Value: "ELECTRICAL", Label: "Electrical"},
			{Value: "STRUCTURAL", Label: "Structural"},
			{Value: "ENVIRONMENTAL", Label: "Environmental"},
			{Value: "OTHER", Label: "Other"},
		},
		PersonTypes: []models.Choice{
			{Value: "EMPLOYEE", Label: "Employee"},
			{Value: "CONTRACTOR", Label: "Contractor"},
			{Value: "THIRD_PARTY", Label: "Third Party"},
			{Value: "VISITOR", Label: "Visitor"},
		},
		InjuryDamageTypes: []models.Choice{
			{Value: "NO_INJURY", Label: "No Injury"},
			{Value: "MINOR_INJURY", Label: "Minor Injury"},
			{Value: "MAJOR_INJURY", Label: "Major Injury"},
			{Value: "FATALITY", Label: "Fatality"},
			{Value: "PROPERTY_DAMAGE", Label: "Property Damage"},
			{Value: "ENVIRONMENTAL_IMPACT", Label: "Environmental Impact"},
			{Value: "NEAR_MISS", Label: "Near Miss"},
		},
		WasteTypes: []models.Choice{
			{Value: "HAZARDOUS", Label: "Hazardous"},
			{Value: "NON_HAZARDOUS", Label: "Non-Hazardous"},
			{Value: "BIOMEDICAL", Label: "Biomedical"},
			{Value: "E_WASTE", Label: "E-Waste"},
			{Value: "CHEMICAL", Label: "Chemical"},
			{Value: "CONSTRUCTION", Label: "Construction"},
			{Value: models.WasteNotApplicable, Label: "Not Applicable"},
		},
		ReportedByTypes: []models.Choice{
			{Value: "EMPLOYEE", Label: "Employee"},
			{Value: "CONTRACTOR", Label: "Contractor"},
			{Value: "VISITOR", Label: "Visitor"},
			{Value: "IOT_SENSOR", Label: "Automated IoT Sensor Trigger"},
		},
		AttachmentTypes: []models.Choice{
			{Value: string(models.AttachmentPhoto), Label: "Photo"},
			{Value: string(models.AttachmentVideo), Label: "Video"},
			{Value: string(models.AttachmentVoiceNote), Label: "Voice Note"},
			{Value: string(models.AttachmentDocument), Label: "Document"},
			{Value: string(models.AttachmentOther), Label: "Other"},
		},
	}
}

// Merge дополняет пустые списки set значениями из статической таблицы.
// nil set заменяется таблицей целиком.
func Merge(set *models.ChoiceSet) *models.ChoiceSet {
	fb := Fallback()
	if set == nil {
		return fb
	}
	out := *set
	fill := func(dst *[]models.Choice, src []models.Choice) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&out.Categories, fb.Categories)
	fill(&out.SubCategories, fb.SubCategories)
	fill(&out.PersonTypes, fb.PersonTypes)
	fill(&out.InjuryDamageTypes, fb.InjuryDamageTypes)
	fill(&out.WasteTypes, fb.WasteTypes)
	fill(&out.ReportedByTypes, fb.ReportedByTypes)
	fill(&out.AttachmentTypes, fb.AttachmentTypes)
	return &out
}
