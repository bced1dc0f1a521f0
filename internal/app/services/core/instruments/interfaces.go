package instruments

import (
	"context"

	"serenemind-service/internal/pkg/dto/responses"
)

type InstrumentUsecase interface {
	ListInstruments(ctx context.Context) ([]responses.InstrumentSummary, error)
	FindInstrumentByID(ctx context.Context, instrumentID string) (*responses.InstrumentDetail, error)
}
