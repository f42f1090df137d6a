package orders

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// TicketPDFQueryHandler streams the printable ticket for one order.
func TicketPDFQueryHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		order, ok := store.Get(id)
		if !ok {
			http.NotFound(w, r)
			return
		}

		pdfBytes, err := renderTicketPDF(order, time.Now())
		if err != nil {
			http.Error(w, "failed to render ticket", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "ordem-"+ticketBarcodeValue(order.ID)+".pdf"))
		_, _ = w.Write(pdfBytes)
	}
}
