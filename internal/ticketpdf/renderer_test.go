package ticketpdf

import (
	"testing"
	"time"

	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	ticket := &domain.Ticket{
		ID:           "11111111-2222-3333-4444-555555555555",
		TicketCode:   "TKT-AAAA1111",
		PurchaseDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	user := &domain.User{Name: "Alice"}
	event := &domain.Event{
		Title:     "Concert",
		Location:  "Main Hall",
		EventDate: time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC),
		Price:     25.50,
	}

	pdf, err := r.Render(ticket, user, event)

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
