package stock

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"tecnoreparos/models"
)

// StockPageData feeds the stock screen renderer.
type StockPageData struct {
	Theme    string
	Username string
	Items    []models.StockItem
	Flash    string
}

// parseDraft validates the stock form. Name and SKU are the required text
// fields; quantity and price that fail to parse default to 0 instead of
// rejecting the submission. Negative values are clamped to 0.
func parseDraft(r *http.Request) (Draft, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	sku := strings.TrimSpace(r.FormValue("sku"))
	if name == "" || sku == "" {
		return Draft{}, fmt.Errorf("nome e código são obrigatórios")
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(r.FormValue("quantity")))
	if err != nil || quantity < 0 {
		quantity = 0
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil || price < 0 {
		price = 0
	}

	return Draft{Name: name, SKU: sku, Quantity: quantity, Price: price}, nil
}
