package checkout

import "testing"

func validContact() ContactInfo {
	return ContactInfo{
		Name:         "Maria Silva",
		Phone:        "(11) 99999-1234",
		Email:        "maria@example.com",
		Street:       "Rua das Flores",
		Number:       "123",
		Complement:   "Apto 42",
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01234-567",
	}
}

func validCard() CardInfo {
	return CardInfo{
		Number:     "4111 1111 1111 1111",
		HolderName: "MARIA SILVA",
		Expiry:     "12/27",
		CVV:        "123",
	}
}

func TestValidateContactAccepts(t *testing.T) {
	if errs := ValidateContact(validContact()); len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateContactComplementOptional(t *testing.T) {
	info := validContact()
	info.Complement = ""
	if errs := ValidateContact(info); len(errs) > 0 {
		t.Fatalf("complement must be optional, got %v", errs)
	}
}

func TestValidateContactMissingFields(t *testing.T) {
	errs := ValidateContact(ContactInfo{})
	fields := []string{"name", "phone", "email", "street", "number", "neighborhood", "city", "state", "zipCode"}
	if len(errs) != len(fields) {
		t.Fatalf("expected %d errors, got %d: %v", len(fields), len(errs), errs)
	}
	for _, field := range fields {
		if errs[field] != requiredMessage {
			t.Fatalf("field %s: expected %q, got %q", field, requiredMessage, errs[field])
		}
	}
}

func TestValidateContactPhoneFormat(t *testing.T) {
	// A digits-only phone must flag only the phone field.
	info := validContact()
	info.Phone = "11999991234"

	errs := ValidateContact(info)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs["phone"] != "Telefone inválido. Use o formato (11) 99999-9999" {
		t.Fatalf("unexpected phone message: %q", errs["phone"])
	}
}

func TestValidateContactEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"maria@example.com", true},
		{"a@b", true},
		{"sem-arroba", false},
		{"@example.com", false},
		{"maria@", false},
		{"a@@b", false},
	}
	for _, tc := range cases {
		info := validContact()
		info.Email = tc.email
		errs := ValidateContact(info)
		if tc.ok && len(errs) > 0 {
			t.Fatalf("email %q: expected valid, got %v", tc.email, errs)
		}
		if !tc.ok && errs["email"] == "" {
			t.Fatalf("email %q: expected an email error", tc.email)
		}
	}
}

func TestValidateCardAccepts(t *testing.T) {
	if errs := ValidateCard(validCard()); len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCardNumberAcceptsUngrouped(t *testing.T) {
	card := validCard()
	card.Number = "4111111111111111"
	if errs := ValidateCard(card); len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCardRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CardInfo)
		field  string
	}{
		{"short number", func(c *CardInfo) { c.Number = "4111 1111" }, "cardNumber"},
		{"letters in number", func(c *CardInfo) { c.Number = "4111 1111 1111 111a" }, "cardNumber"},
		{"missing holder", func(c *CardInfo) { c.HolderName = " " }, "cardName"},
		{"bad expiry month", func(c *CardInfo) { c.Expiry = "13/27" }, "expiry"},
		{"expiry without slash", func(c *CardInfo) { c.Expiry = "1227" }, "expiry"},
		{"cvv too short", func(c *CardInfo) { c.CVV = "12" }, "cvv"},
		{"cvv too long", func(c *CardInfo) { c.CVV = "12345" }, "cvv"},
	}
	for _, tc := range cases {
		card := validCard()
		tc.mutate(&card)
		errs := ValidateCard(card)
		if len(errs) != 1 || errs[tc.field] == "" {
			t.Fatalf("%s: expected a single %s error, got %v", tc.name, tc.field, errs)
		}
	}
}

func TestValidateCardMissingFields(t *testing.T) {
	errs := ValidateCard(CardInfo{})
	for _, field := range []string{"cardNumber", "cardName", "expiry", "cvv"} {
		if errs[field] != requiredMessage {
			t.Fatalf("field %s: expected %q, got %q", field, requiredMessage, errs[field])
		}
	}
}

func TestValidateCardFourDigitCVV(t *testing.T) {
	card := validCard()
	card.CVV = "1234"
	if errs := ValidateCard(card); len(errs) > 0 {
		t.Fatalf("4-digit cvv must be accepted, got %v", errs)
	}
}
