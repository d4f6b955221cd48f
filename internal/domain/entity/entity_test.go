package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuoteState_LabelYClase(t *testing.T) {
	assert.Equal(t, "Enviado", StateSent.Label())
	assert.Equal(t, "Rechazado", StateRejected.Label())
	assert.Empty(t, StateSent.CSSClass())
	assert.Equal(t, "responded", StateResponded.CSSClass())
	assert.False(t, QuoteState(0).Valid())
	assert.Empty(t, QuoteState(5).Label())
}

func TestUserType_Destination(t *testing.T) {
	dest, ok := UserTypeAdmin.Destination()
	assert.True(t, ok)
	assert.Equal(t, PathAdmin, dest)

	dest, ok = UserTypeAsesor.Destination()
	assert.True(t, ok)
	assert.Equal(t, PathAsesor, dest)

	_, ok = UserType(99).Destination()
	assert.False(t, ok)
}

func TestProduct_HasOffer(t *testing.T) {
	assert.False(t, Product{}.HasOffer())
	zero := decimal.Zero
	assert.False(t, Product{Offer: &zero}.HasOffer())
	offer := decimal.NewFromInt(10)
	assert.True(t, Product{Offer: &offer}.HasOffer())
}
