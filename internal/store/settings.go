package store

// Currency is a preferred display currency code.
type Currency string

// Supported currencies.
const (
	CurrencyTND Currency = "TND"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Currencies lists the supported currency codes in display order.
var Currencies = []Currency{CurrencyTND, CurrencyUSD, CurrencyEUR, CurrencyGBP}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyTND:
		return "د.ت"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	default:
		return string(c)
	}
}

// Language is a preferred interface language code.
type Language string

// Supported languages.
const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
)

// Languages lists the supported language codes.
var Languages = []Language{LanguageEN, LanguageFR}

// Currency returns the preferred currency, defaulting to TND when the
// slot is unset or holds an unknown code.
func (s *Store) Currency() (Currency, error) {
	raw, ok, err := s.Get(keyCurrency)
	if err != nil || !ok {
		return CurrencyTND, err
	}
	for _, c := range Currencies {
		if Currency(raw) == c {
			return c, nil
		}
	}
	return CurrencyTND, nil
}

// SetCurrency persists the preferred currency.
func (s *Store) SetCurrency(c Currency) error {
	return s.Put(keyCurrency, string(c))
}

// Language returns the preferred language, defaulting to English when
// the slot is unset or holds an unknown code.
func (s *Store) Language() (Language, error) {
	raw, ok, err := s.Get(keyLanguage)
	if err != nil || !ok {
		return LanguageEN, err
	}
	for _, l := range Languages {
		if Language(raw) == l {
			return l, nil
		}
	}
	return LanguageEN, nil
}

// SetLanguage persists the preferred language.
func (s *Store) SetLanguage(l Language) error {
	return s.Put(keyLanguage, string(l))
}
