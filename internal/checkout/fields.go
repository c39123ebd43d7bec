package checkout

import (
	"regexp"
	"strings"
)

// FieldErrors maps a form field to the reason it was rejected. Validation is
// collected per-field, never fail-fast, so every invalid field can be flagged
// at once.
type FieldErrors map[string]string

// ContactInfo carries the contact and delivery-address step fields.
// Complement is the only optional one.
type ContactInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// CardInfo carries the card fields collected in the payment step.
type CardInfo struct {
	Number     string `json:"cardNumber"`
	HolderName string `json:"cardName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

var (
	phonePattern  = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

const requiredMessage = "Campo obrigatório"

// ValidateContact checks presence of every required field plus the phone and
// email formats.
func ValidateContact(info ContactInfo) FieldErrors {
	errs := FieldErrors{}

	requireField(errs, "name", info.Name)
	requireField(errs, "street", info.Street)
	requireField(errs, "number", info.Number)
	requireField(errs, "neighborhood", info.Neighborhood)
	requireField(errs, "city", info.City)
	requireField(errs, "state", info.State)
	requireField(errs, "zipCode", info.ZipCode)

	switch {
	case strings.TrimSpace(info.Phone) == "":
		errs["phone"] = requiredMessage
	case !phonePattern.MatchString(info.Phone):
		errs["phone"] = "Telefone inválido. Use o formato (11) 99999-9999"
	}

	switch {
	case strings.TrimSpace(info.Email) == "":
		errs["email"] = requiredMessage
	case !validEmail(info.Email):
		errs["email"] = "E-mail inválido"
	}

	return errs
}

// ValidateCard checks the card fields. Number may be typed with the usual
// groups of four separated by spaces.
func ValidateCard(card CardInfo) FieldErrors {
	errs := FieldErrors{}

	digits := strings.ReplaceAll(card.Number, " ", "")
	switch {
	case strings.TrimSpace(card.Number) == "":
		errs["cardNumber"] = requiredMessage
	case len(digits) != 16 || !digitsPattern.MatchString(digits):
		errs["cardNumber"] = "Número do cartão inválido"
	}

	requireField(errs, "cardName", card.HolderName)

	switch {
	case strings.TrimSpace(card.Expiry) == "":
		errs["expiry"] = requiredMessage
	case !expiryPattern.MatchString(card.Expiry):
		errs["expiry"] = "Validade inválida. Use o formato MM/AA"
	}

	switch {
	case strings.TrimSpace(card.CVV) == "":
		errs["cvv"] = requiredMessage
	case !cvvPattern.MatchString(card.CVV):
		errs["cvv"] = "CVV inválido"
	}

	return errs
}

func requireField(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = requiredMessage
	}
}

// validEmail requires exactly one @ with non-empty local and domain parts.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if strings.Count(email, "@") != 1 {
		return false
	}
	local, rest, _ := strings.Cut(email, "@")
	return local != "" && rest != ""
}
