package instruments

import (
	"context"

	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"
)

type instrumentUsecase struct{}

func NewInstrumentUsecase() InstrumentUsecase {
	return &instrumentUsecase{}
}

func (uc *instrumentUsecase) ListInstruments(ctx context.Context) ([]responses.InstrumentSummary, error) {
	specs := All()
	summaries := make([]responses.InstrumentSummary, 0, len(specs))
	for _, spec := range specs {
		summaries = append(summaries, responses.InstrumentSummary{
			ID:          spec.ID,
			DisplayName: spec.DisplayName,
			Route:       spec.Route,
			Icon:        spec.Icon,
		})
	}
	return summaries, nil
}

func (uc *instrumentUsecase) FindInstrumentByID(ctx context.Context, instrumentID string) (*responses.InstrumentDetail, error) {
	spec, ok := Lookup(instrumentID)
	if !ok {
		return nil, exceptions.ErrUnknownInstrument(instrumentID)
	}

	return &responses.InstrumentDetail{
		InstrumentSummary: responses.InstrumentSummary{
			ID:          spec.ID,
			DisplayName: spec.DisplayName,
			Route:       spec.Route,
			Icon:        spec.Icon,
		},
		Questions:  spec.Questions,
		Options:    spec.Options,
		Disclaimer: Disclaimer,
	}, nil
}
