package stock

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	sessioncontext "tecnoreparos/frontend/shared/context"
	"tecnoreparos/frontend/settings"
	"tecnoreparos/infrastructure/audit"
	"tecnoreparos/models"
)

// StockPageQueryHandler renders the inventory screen.
func StockPageQueryHandler(store *Store, themes *settings.ThemeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		data := StockPageData{
			Theme:    themes.Current(),
			Username: session.Username,
			Items:    store.List(),
			Flash:    r.URL.Query().Get("flash"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := StockPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render stock page", http.StatusInternalServerError)
		}
	}
}

// CreateItemCommandHandler adds a stock item.
func CreateItemCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			redirectFlash(w, r, "formulário inválido")
			return
		}
		draft, err := parseDraft(r)
		if err != nil {
			redirectFlash(w, r, err.Error())
			return
		}
		item := store.Add(r.Context(), draft)
		auditSvc.Record(r.Context(), session.Username, "create", "stock_item", item.ID, nil, item)
		http.Redirect(w, r, "/tasker/stock", http.StatusSeeOther)
	}
}

// UpdateItemCommandHandler replaces an existing stock item; unknown ids are
// a silent no-op.
func UpdateItemCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			redirectFlash(w, r, "formulário inválido")
			return
		}
		draft, err := parseDraft(r)
		if err != nil {
			redirectFlash(w, r, err.Error())
			return
		}

		id := chi.URLParam(r, "id")
		before, found := store.Get(id)
		store.Update(r.Context(), models.StockItem{
			ID:       id,
			Name:     draft.Name,
			SKU:      draft.SKU,
			Quantity: draft.Quantity,
			Price:    draft.Price,
		})
		if found {
			after, _ := store.Get(id)
			auditSvc.Record(r.Context(), session.Username, "update", "stock_item", id, before, after)
		}
		http.Redirect(w, r, "/tasker/stock", http.StatusSeeOther)
	}
}

// DeleteItemCommandHandler removes a stock item; the confirmation step
// lives in the view.
func DeleteItemCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		id := chi.URLParam(r, "id")
		before, found := store.Get(id)
		store.Delete(r.Context(), id)
		if found {
			auditSvc.Record(r.Context(), session.Username, "delete", "stock_item", id, before, nil)
		}
		http.Redirect(w, r, "/tasker/stock", http.StatusSeeOther)
	}
}

func redirectFlash(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/tasker/stock?flash="+url.QueryEscape(message), http.StatusSeeOther)
}
