package enum

// PricingUnit is the unit a service price applies to
type PricingUnit string

const (
	UnitKilogram PricingUnit = "kg"
	UnitGarment  PricingUnit = "prenda"
	UnitItem     PricingUnit = "unidad"
)

func (u PricingUnit) IsValid() bool {
	switch u {
	case UnitKilogram, UnitGarment, UnitItem:
		return true
	}
	return false
}
