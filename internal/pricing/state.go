package pricing

import (
	"net/url"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/domain"
)

// ViewState is the visitor's current selection. It is owned by the caller
// (one per request) and changed only through the Select methods, which
// replace the previous value and return the new state.
type ViewState struct {
	Segment  domain.Segment      `json:"segment"`
	Currency domain.CurrencyCode `json:"currency"`
}

// NewViewState returns the initial selection: the catalog's first tab and JPY.
func NewViewState(cat *catalog.Catalog) ViewState {
	return ViewState{
		Segment:  cat.DefaultSegment(),
		Currency: domain.DefaultCurrency,
	}
}

// SelectSegment replaces the segment. Segments outside the catalog are rejected
// and the state is returned unchanged.
func (s ViewState) SelectSegment(cat *catalog.Catalog, seg domain.Segment) (ViewState, error) {
	if !cat.HasSegment(seg) {
		return s, domain.Invalid("state.segment", "segment "+seg.String()+" is not offered")
	}
	s.Segment = seg
	return s, nil
}

// SelectCurrency replaces the currency. Currencies the catalog does not offer
// are rejected and the state is returned unchanged.
func (s ViewState) SelectCurrency(cat *catalog.Catalog, code domain.CurrencyCode) (ViewState, error) {
	if !cat.HasCurrency(code) {
		return s, domain.Invalid("state.currency", "currency "+code.String()+" is not offered")
	}
	s.Currency = code
	return s, nil
}

// Query encodes the state as URL query parameters.
func (s ViewState) Query() string {
	v := url.Values{}
	v.Set("segment", string(s.Segment))
	v.Set("currency", string(s.Currency))
	return v.Encode()
}

// ParseViewState applies raw segment and currency input to the initial state.
// Empty values keep the defaults. All invalid fields are reported together
// in a *domain.ValidationError keyed by parameter name.
func ParseViewState(cat *catalog.Catalog, segment, currency string) (ViewState, error) {
	const op = "state.parse"

	state := NewViewState(cat)
	var verr *domain.ValidationError

	if segment != "" {
		seg, err := domain.ParseSegment(segment)
		if err == nil {
			state, err = state.SelectSegment(cat, seg)
		}
		if err != nil {
			verr = addField(verr, op, "segment", domain.ErrorMessage(err))
		}
	}

	if currency != "" {
		code, err := domain.ParseCurrency(currency)
		if err == nil {
			state, err = state.SelectCurrency(cat, code)
		}
		if err != nil {
			verr = addField(verr, op, "currency", domain.ErrorMessage(err))
		}
	}

	if verr != nil {
		return NewViewState(cat), verr
	}
	return state, nil
}

func addField(verr *domain.ValidationError, op, field, message string) *domain.ValidationError {
	if verr == nil {
		return domain.NewValidationError(op, field, message)
	}
	return domain.AddFieldError(verr, field, message)
}
