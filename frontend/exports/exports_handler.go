// Package exports streams the current collections as CSV downloads.
package exports

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"tecnoreparos/frontend/orders"
	"tecnoreparos/frontend/stock"
)

// OrdersExportCSVHandler writes every service order as one CSV row. Image
// payloads are summarized as a count; embedding them would make the file
// useless in a spreadsheet.
func OrdersExportCSVHandler(store *orders.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=ordens-de-servico.csv")

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"id", "clientName", "device", "issueDescription", "status", "createdAt", "updatedAt", "imageCount"})
		for _, o := range store.List() {
			_ = cw.Write([]string{
				o.ID,
				o.ClientName,
				o.Device,
				o.IssueDescription,
				string(o.Status),
				o.CreatedAt,
				o.UpdatedAt,
				strconv.Itoa(len(o.Images)),
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			slog.Error("write orders csv failed", slog.Any("err", err))
		}
	}
}

// StockExportCSVHandler writes the inventory as CSV.
func StockExportCSVHandler(store *stock.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=estoque.csv")

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"id", "name", "sku", "quantity", "price"})
		for _, item := range store.List() {
			_ = cw.Write([]string{
				item.ID,
				item.Name,
				item.SKU,
				strconv.Itoa(item.Quantity),
				strconv.FormatFloat(item.Price, 'f', 2, 64),
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			slog.Error("write stock csv failed", slog.Any("err", err))
		}
	}
}
