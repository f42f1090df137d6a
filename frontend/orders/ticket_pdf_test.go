package orders

import (
	"bytes"
	"testing"
	"time"

	"tecnoreparos/models"
)

func TestRenderTicketPDF(t *testing.T) {
	order := models.ServiceOrder{
		ID:               "550e8400-e29b-41d4-a716-446655440000",
		ClientName:       "João Silva",
		Device:           "Laptop Dell Inspiron 15",
		IssueDescription: "Não liga, sem sinal de energia.",
		Status:           models.StatusPending,
		CreatedAt:        "2023-10-26T10:00:00Z",
		UpdatedAt:        "2023-10-26T10:00:00Z",
	}

	pdfBytes, err := renderTicketPDF(order, time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render ticket: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestTicketTextIsTranscodedForCoreFonts(t *testing.T) {
	order := models.ServiceOrder{
		ID:               "1",
		ClientName:       "Serviço Rápido",
		Device:           "Notebook",
		IssueDescription: "Não liga.",
		Status:           models.StatusPending,
		CreatedAt:        "2023-10-26T10:00:00Z",
		UpdatedAt:        "2023-10-26T10:00:00Z",
	}

	// Compression off so the content stream is inspectable.
	pdfBytes, err := buildTicketPDF(order, time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC), false)
	if err != nil {
		t.Fatalf("render ticket: %v", err)
	}

	// Helvetica is cp1252: "ç" must be the single byte 0xE7, not the UTF-8
	// pair 0xC3 0xA7 that viewers display as two characters.
	if !bytes.Contains(pdfBytes, []byte("Servi\xe7o")) {
		t.Fatalf("client name not transcoded to cp1252")
	}
	if bytes.Contains(pdfBytes, []byte("Servi\xc3\xa7o")) {
		t.Fatalf("raw UTF-8 text reached the content stream")
	}
}

func TestTicketBarcodeValue(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{id: "1", want: "OS-1"},
		{id: "550e8400-e29b-41d4-a716-446655440000", want: "OS-550E8400E29B"},
	}
	for _, tc := range cases {
		if got := ticketBarcodeValue(tc.id); got != tc.want {
			t.Fatalf("id %q: expected %q, got %q", tc.id, tc.want, got)
		}
	}
}
