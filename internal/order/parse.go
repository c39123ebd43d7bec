package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	itemHeaderPattern = regexp.MustCompile(`^\*(\d+)\. (.+)\*$`)
	quantityPattern   = regexp.MustCompile(`^Quantidade: (\d+)x$`)
	unitPricePattern  = regexp.MustCompile(`^Preço: R\$ (\d+\.\d{2})$`)
	lineTotalPattern  = regexp.MustCompile(`^Subtotal: R\$ (\d+\.\d{2})$`)
	subtotalPattern   = regexp.MustCompile(`^Subtotal: R\$ (\d+\.\d{2})$`)
	feePattern        = regexp.MustCompile(`^Taxa de Entrega: R\$ (\d+\.\d{2})$`)
	totalPattern      = regexp.MustCompile(`^\*Total: R\$ (\d+\.\d{2})\*$`)
)

// Parse reconstructs a payload from a rendered message. It is the inverse of
// Message for every payload Build can produce; monetary values survive the
// round trip without precision loss.
func Parse(message string) (Payload, error) {
	lines := strings.Split(message, "\n")
	var payload Payload

	i := 0
	next := func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		line := lines[i]
		i++
		return line, true
	}

	if line, ok := next(); !ok || line != headerLabel {
		return Payload{}, fmt.Errorf("missing header: %q", line)
	}
	skipBlank(&i, lines)
	if line, ok := next(); !ok || line != itemsLabel {
		return Payload{}, fmt.Errorf("missing items label: %q", line)
	}
	skipBlank(&i, lines)

	for i < len(lines) {
		m := itemHeaderPattern.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		i++

		item := Line{Name: m[2]}
		qty, ok := next()
		if qm := quantityPattern.FindStringSubmatch(qty); ok && qm != nil {
			item.Quantity, _ = strconv.Atoi(qm[1])
		} else {
			return Payload{}, fmt.Errorf("item %s: bad quantity line %q", item.Name, qty)
		}

		price, ok := next()
		pm := unitPricePattern.FindStringSubmatch(price)
		if !ok || pm == nil {
			return Payload{}, fmt.Errorf("item %s: bad price line %q", item.Name, price)
		}
		item.UnitPrice = mustDecimal(pm[1])

		total, ok := next()
		tm := lineTotalPattern.FindStringSubmatch(total)
		if !ok || tm == nil {
			return Payload{}, fmt.Errorf("item %s: bad subtotal line %q", item.Name, total)
		}
		item.Total = mustDecimal(tm[1])

		payload.Lines = append(payload.Lines, item)
		skipBlank(&i, lines)
	}

	if len(payload.Lines) == 0 {
		return Payload{}, fmt.Errorf("no order lines found")
	}

	if line, ok := next(); !ok || line != valuesLabel {
		return Payload{}, fmt.Errorf("missing values label: %q", line)
	}
	var err error
	if payload.Subtotal, err = matchMoney(&i, lines, subtotalPattern, "subtotal"); err != nil {
		return Payload{}, err
	}
	if payload.DeliveryFee, err = matchMoney(&i, lines, feePattern, "delivery fee"); err != nil {
		return Payload{}, err
	}
	if payload.Total, err = matchMoney(&i, lines, totalPattern, "total"); err != nil {
		return Payload{}, err
	}
	skipBlank(&i, lines)

	if line, ok := next(); !ok || line != paymentLabel {
		return Payload{}, fmt.Errorf("missing payment label: %q", line)
	}
	if line, ok := next(); ok {
		payload.PaymentLabel = line
	} else {
		return Payload{}, fmt.Errorf("missing payment method")
	}
	skipBlank(&i, lines)

	if i < len(lines) && lines[i] == observationsLabel {
		i++
		var obs []string
		for i < len(lines) && lines[i] != "" {
			obs = append(obs, lines[i])
			i++
		}
		payload.Observations = strings.Join(obs, "\n")
		skipBlank(&i, lines)
	}

	if i >= len(lines) || lines[i] != footerLabel {
		return Payload{}, fmt.Errorf("missing footer")
	}

	return payload, nil
}

func skipBlank(i *int, lines []string) {
	for *i < len(lines) && lines[*i] == "" {
		*i++
	}
}

func matchMoney(i *int, lines []string, pattern *regexp.Regexp, what string) (decimal.Decimal, error) {
	if *i >= len(lines) {
		return decimal.Zero, fmt.Errorf("missing %s line", what)
	}
	m := pattern.FindStringSubmatch(lines[*i])
	if m == nil {
		return decimal.Zero, fmt.Errorf("bad %s line %q", what, lines[*i])
	}
	*i++
	return mustDecimal(m[1]), nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
