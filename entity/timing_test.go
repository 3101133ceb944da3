package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safaribook/entity"
)

func TestRupeesToleratesWireShapes(t *testing.T) {
	tests := []struct {
		raw  string
		want entity.Rupees
	}{
		{`500`, 500},
		{`499.5`, 499.5},
		{`"500"`, 500},
		{`"not a number"`, 0},
		{`null`, 0},
	}

	for _, tt := range tests {
		var got entity.Rupees
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &got), tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestTicketKindDefaults(t *testing.T) {
	assert.Equal(t, "regular_ticket", entity.SafariTicket{}.Kind())
	assert.Equal(t, "vip_ticket", entity.SafariTicket{TicketKind: "vip_ticket"}.Kind())
}

func TestBookingDisplayStatusDefaults(t *testing.T) {
	assert.Equal(t, "pending", entity.BookingRecord{}.DisplayStatus())
	assert.Equal(t, "paid", entity.BookingRecord{Status: "paid"}.DisplayStatus())
}
