// CLAUDE:SUMMARY Closed enumeration of lexicon classes (Wolof/French numerals, connectors, markers) with YAML/CSV names.
package lexicon

import (
	"errors"
	"fmt"
)

// Class partitions lexicon entries. The set is closed: every switch over Class
// in this module is exhaustive.
type Class uint8

const (
	WolofUnit Class = iota + 1
	WolofTen
	WolofHundred
	WolofThousand
	WolofSpecial
	WolofLarge
	FrenchUnit
	FrenchTen
	FrenchMultiplier
	Connector
	CountUnit
	CurrencyMarker
	DataUnitMarker
	CodeMarker
	CodeFiller
)

// ErrUnknownClass is returned when a pack names a class that does not exist.
var ErrUnknownClass = errors.New("unknown lexicon class")

// numeralOrder is the single-word lookup priority.
var numeralOrder = []Class{
	WolofUnit, WolofTen, WolofHundred, WolofThousand, WolofSpecial, WolofLarge,
	FrenchUnit, FrenchTen, FrenchMultiplier,
}

// markerClasses are matched on the accent-folded key.
var markerClasses = []Class{CurrencyMarker, DataUnitMarker, CodeMarker, CodeFiller}

// AllClasses lists every class in declaration order.
func AllClasses() []Class {
	return []Class{
		WolofUnit, WolofTen, WolofHundred, WolofThousand, WolofSpecial, WolofLarge,
		FrenchUnit, FrenchTen, FrenchMultiplier,
		Connector, CountUnit, CurrencyMarker, DataUnitMarker, CodeMarker, CodeFiller,
	}
}

func (c Class) String() string {
	switch c {
	case WolofUnit:
		return "wolof_unit"
	case WolofTen:
		return "wolof_ten"
	case WolofHundred:
		return "wolof_hundred"
	case WolofThousand:
		return "wolof_thousand"
	case WolofSpecial:
		return "wolof_special"
	case WolofLarge:
		return "wolof_large"
	case FrenchUnit:
		return "french_unit"
	case FrenchTen:
		return "french_ten"
	case FrenchMultiplier:
		return "french_multiplier"
	case Connector:
		return "connector"
	case CountUnit:
		return "count_unit"
	case CurrencyMarker:
		return "currency_marker"
	case DataUnitMarker:
		return "data_unit_marker"
	case CodeMarker:
		return "code_marker"
	case CodeFiller:
		return "code_filler"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// ParseClass maps a class name as written in pack files to a Class.
func ParseClass(name string) (Class, error) {
	for _, c := range AllClasses() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// IsNumeral reports whether entries of c carry a numeric value.
func (c Class) IsNumeral() bool {
	switch c {
	case WolofUnit, WolofTen, WolofHundred, WolofThousand, WolofSpecial, WolofLarge,
		FrenchUnit, FrenchTen, FrenchMultiplier:
		return true
	case Connector, CountUnit, CurrencyMarker, DataUnitMarker, CodeMarker, CodeFiller:
		return false
	}
	return false
}

// IsWolof reports whether c belongs to the Wolof numeral vocabulary.
func (c Class) IsWolof() bool {
	switch c {
	case WolofUnit, WolofTen, WolofHundred, WolofThousand, WolofSpecial, WolofLarge:
		return true
	case FrenchUnit, FrenchTen, FrenchMultiplier,
		Connector, CountUnit, CurrencyMarker, DataUnitMarker, CodeMarker, CodeFiller:
		return false
	}
	return false
}

// IsFrench reports whether c belongs to the French numeral vocabulary.
func (c Class) IsFrench() bool {
	switch c {
	case FrenchUnit, FrenchTen, FrenchMultiplier:
		return true
	case WolofUnit, WolofTen, WolofHundred, WolofThousand, WolofSpecial, WolofLarge,
		Connector, CountUnit, CurrencyMarker, DataUnitMarker, CodeMarker, CodeFiller:
		return false
	}
	return false
}

// isMarker reports whether c is looked up on the accent-folded key.
func (c Class) isMarker() bool {
	switch c {
	case CurrencyMarker, DataUnitMarker, CodeMarker, CodeFiller:
		return true
	case WolofUnit, WolofTen, WolofHundred, WolofThousand, WolofSpecial, WolofLarge,
		FrenchUnit, FrenchTen, FrenchMultiplier, Connector, CountUnit:
		return false
	}
	return false
}

// MarshalText encodes the class by name (JSON and YAML).
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a class name.
func (c *Class) UnmarshalText(b []byte) error {
	parsed, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
