package services

import (
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
)

// FeeSchedule holds the flat fees for each service option and the order-level
// processing surcharge, all in cents.
//
// The schedule is injected rather than hard-coded so tenants can run their
// own fee tables. DefaultFeeSchedule provides the standard rates.
type FeeSchedule struct {
	ProcessServiceFee  int64
	CertifiedMailFee   int64
	RushServiceFee     int64
	RemoteLocationFee  int64
	OrderSurchargeFlat int64
}

// DefaultFeeSchedule returns the standard fee table.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		ProcessServiceFee:  7500,
		CertifiedMailFee:   2500,
		RushServiceFee:     5000,
		RemoteLocationFee:  4000,
		OrderSurchargeFlat: 1000,
	}
}

// RecipientPricing is the price breakdown of a single recipient.
//
// Confirmed reports whether the base price is an accepted bid amount. While a
// recipient is still negotiating, Base is zero and Total carries only the
// estimated add-on fees: the pending figure must never be presented as final.
type RecipientPricing struct {
	RecipientID kernel.UUID
	Confirmed   bool
	Base        kernel.Money
	AddOns      kernel.Money
	Total       kernel.Money
}

// OrderPricing is the price breakdown of a whole order. ConfirmedTotal sums
// confirmed recipients plus the processing surcharge; PendingSubtotal sums
// the estimated fees of recipients still negotiating and is reported
// separately, never folded into the confirmed figure.
type OrderPricing struct {
	OrderID         kernel.UUID
	Recipients      []RecipientPricing
	Surcharge       kernel.Money
	ConfirmedTotal  kernel.Money
	PendingSubtotal kernel.Money
}

// PricingCalculator is a domain service deriving monetary totals from
// recipient state. It is the single source of truth for fee math: no other
// component computes totals.
//
// Business rules:
//   - A recipient's base price is the accepted bid amount, regardless of
//     whether the amount came from the original proposal or a counter-offer.
//   - Add-on fees apply per active service-option flag.
//   - Recipients without an accepted bid contribute only their estimated
//     add-ons, reported as pending.
//   - The processing surcharge applies once per order, on the confirmed
//     total only.
type PricingCalculator struct {
	schedule FeeSchedule
}

// NewPricingCalculator creates a calculator with the given fee schedule.
func NewPricingCalculator(schedule FeeSchedule) PricingCalculator {
	return PricingCalculator{schedule: schedule}
}

// PriceRecipient derives the price breakdown for a single recipient.
func (p PricingCalculator) PriceRecipient(recipient *order.Recipient) (RecipientPricing, error) {
	if err := recipient.Validate(); err != nil {
		return RecipientPricing{}, err
	}

	addOns, err := kernel.NewMoneyFromCents(p.addOnCents(recipient.Options()))
	if err != nil {
		return RecipientPricing{}, err
	}

	pricing := RecipientPricing{
		RecipientID: recipient.ID(),
		AddOns:      addOns,
		Total:       addOns,
	}

	if price := recipient.AgreedPrice(); price != nil {
		total, err := price.Add(addOns)
		if err != nil {
			return RecipientPricing{}, err
		}
		pricing.Confirmed = true
		pricing.Base = *price
		pricing.Total = total
	}

	return pricing, nil
}

// PriceOrder derives the full price breakdown for an order.
func (p PricingCalculator) PriceOrder(o *order.Order) (OrderPricing, error) {
	if err := o.Validate(); err != nil {
		return OrderPricing{}, err
	}

	surcharge, err := kernel.NewMoneyFromCents(p.schedule.OrderSurchargeFlat)
	if err != nil {
		return OrderPricing{}, err
	}

	pricing := OrderPricing{
		OrderID:   o.ID(),
		Surcharge: surcharge,
	}

	var confirmedCents, pendingCents int64
	for _, recipient := range o.Recipients() {
		recipientPricing, err := p.PriceRecipient(recipient)
		if err != nil {
			return OrderPricing{}, err
		}

		pricing.Recipients = append(pricing.Recipients, recipientPricing)
		if recipientPricing.Confirmed {
			confirmedCents += recipientPricing.Total.Cents()
		} else {
			pendingCents += recipientPricing.Total.Cents()
		}
	}

	if pricing.ConfirmedTotal, err = kernel.NewMoneyFromCents(confirmedCents + p.schedule.OrderSurchargeFlat); err != nil {
		return OrderPricing{}, err
	}
	if pricing.PendingSubtotal, err = kernel.NewMoneyFromCents(pendingCents); err != nil {
		return OrderPricing{}, err
	}

	return pricing, nil
}

func (p PricingCalculator) addOnCents(options order.ServiceOptions) int64 {
	var cents int64
	if options.ProcessService {
		cents += p.schedule.ProcessServiceFee
	}
	if options.CertifiedMail {
		cents += p.schedule.CertifiedMailFee
	}
	if options.RushService {
		cents += p.schedule.RushServiceFee
	}
	if options.RemoteLocation {
		cents += p.schedule.RemoteLocationFee
	}
	return cents
}
