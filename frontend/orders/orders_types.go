package orders

import (
	"fmt"
	"net/http"
	"strings"

	"tecnoreparos/models"
)

// OrdersPageData feeds the orders screen renderer.
type OrdersPageData struct {
	Theme    string
	Username string
	Orders   []models.ServiceOrder
	Query    Query
	Flash    string
}

// parseDraft validates the order form. Required-field checks only; an
// unknown status falls back to pending rather than rejecting.
func parseDraft(r *http.Request) (Draft, error) {
	clientName := strings.TrimSpace(r.FormValue("clientName"))
	device := strings.TrimSpace(r.FormValue("device"))
	issue := strings.TrimSpace(r.FormValue("issueDescription"))
	if clientName == "" || device == "" || issue == "" {
		return Draft{}, fmt.Errorf("cliente, aparelho e defeito são obrigatórios")
	}

	status := models.Status(r.FormValue("status"))
	if !status.Valid() {
		status = models.StatusPending
	}
	return Draft{
		ClientName:       clientName,
		Device:           device,
		IssueDescription: issue,
		Status:           status,
	}, nil
}

func parseQuery(r *http.Request) Query {
	q := Query{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
		Sort:   r.URL.Query().Get("sort"),
	}
	if q.Status == "" {
		q.Status = "all"
	}
	if q.Sort != "oldest" {
		q.Sort = "newest"
	}
	return q
}
