package editor

import "github.com/MKhiriev/go-secret-keeper/models"

// Credit card slots.
const (
	SlotCompanyName     = "companyName"
	SlotCardNumber      = "cardNumber"
	SlotExpirationMonth = "expirationMonth"
	SlotExpirationYear  = "expirationYear"
	SlotSecurityCode    = "securityCode"
)

var creditCardLayout = layout{
	typeID: models.SecretTypeCreditCard,
	slots: []slotSpec{
		{name: SlotCompanyName},
		{name: SlotCardNumber, sensitive: true},
		{name: SlotExpirationMonth, sensitive: true},
		{name: SlotExpirationYear, sensitive: true},
		{name: SlotSecurityCode, sensitive: true},
	},
	extract: func(s models.Secret) ([]*models.SecretComponent, bool) {
		c := s.CreditCardComponents
		if c == nil {
			return make([]*models.SecretComponent, 5), false
		}
		return []*models.SecretComponent{c.CompanyName, c.CardNumber, c.ExpirationMonth, c.ExpirationYear, c.SecurityCode}, true
	},
	compose: func(s *models.Secret, c []*models.SecretComponent) {
		s.CreditCardComponents = &models.CreditCardComponents{
			CompanyName:     c[0],
			CardNumber:      c[1],
			ExpirationMonth: c[2],
			ExpirationYear:  c[3],
			SecurityCode:    c[4],
		}
	},
	assemble: func(in *models.SecretInput, c []*models.SecretComponentInput) {
		in.CreditCardComponents = &models.CreditCardComponentsInput{
			CompanyName:     c[0],
			CardNumber:      c[1],
			ExpirationMonth: c[2],
			ExpirationYear:  c[3],
			SecurityCode:    c[4],
		}
	},
}

// CreditCardEditor edits credit_card secrets. The company name is metadata
// and is never encrypted.
type CreditCardEditor struct {
	*slotBundle
}

// NewCreditCardEditor returns an editor holding an empty bundle.
func NewCreditCardEditor(deps Deps) *CreditCardEditor {
	return &CreditCardEditor{slotBundle: newSlotBundle(creditCardLayout, deps.withDefaults())}
}
