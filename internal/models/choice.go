package models

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoiceSet - все перечисления, нужные формам
type ChoiceSet struct {
	Categories        []Choice `json:"categories"`
	SubCategories     []Choice `json:"sub_categories"`
	PersonTypes       []Choice `json:"person_types"`
	InjuryDamageTypes []Choice `json:"injury_damage_types"`
	WasteTypes        []Choice `json:"waste_types"`
	ReportedByTypes   []Choice `json:"reported_by_types"`
	AttachmentTypes   []Choice `json:"attachment_types"`
}

// Label возвращает подпись для значения или само значение, если оно неизвестно
func Label(list []Choice, value string) string {
	for _, c := range list {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
