package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/incident_console/internal/models"
)

const listPath = "/incidents"

// listURL собирает адрес списка. Пустые значения в extra пропускаются.
func listURL(page int, search string, extra ...string) string {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if search != "" {
		q.Set("search", search)
	}
	for i := 0; i+1 < len(extra); i += 2 {
		if extra[i+1] != "" {
			q.Set(extra[i], extra[i+1])
		}
	}
	if len(q) == 0 {
		return listPath
	}
	return listPath + "?" + q.Encode()
}

// safeReturn пропускает только адреса внутри консоли
func safeReturn(raw string) string {
	if raw == listPath || strings.HasPrefix(raw, listPath+"?") || strings.HasPrefix(raw, listPath+"/") {
		return raw
	}
	return listPath
}

// withParams добавляет параметры к адресу возврата
func withParams(target string, params url.Values) string {
	u, err := url.Parse(safeReturn(target))
	if err != nil {
		u = &url.URL{Path: listPath}
	}
	q := u.Query()
	for k, vs := range params {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// listURLWithView возвращает адрес списка с открытой карточкой id
func listURLWithView(base string, id models.ID) string {
	return withParams(base, url.Values{"view": {id.String()}})
}

func fragmentURL(incidentID models.ID, returnTo string) string {
	u := listPath + "/" + url.PathEscape(incidentID.String()) + "/attachments"
	if returnTo == "" {
		return u
	}
	return u + "?" + url.Values{"return": {returnTo}}.Encode()
}

func incidentPath(id models.ID, suffix string) string {
	return listPath + "/" + url.PathEscape(id.String()) + suffix
}

func attachmentDeleteURL(a *models.Attachment, incidentID models.ID, returnTo string) string {
	q := url.Values{"incident": {incidentID.String()}}
	if returnTo != "" {
		q.Set("return", returnTo)
	}
	return "/attachments/" + url.PathEscape(a.ID.String()) + "/delete?" + q.Encode()
}
