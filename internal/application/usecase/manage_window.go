package usecase

import (
	"context"
	"fmt"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/logging"
)

// DefaultHomeCaption is the caption of the fixed leading tab.
const DefaultHomeCaption = "Home"

// ManageWindowsUseCase creates aggregator windows.
type ManageWindowsUseCase struct {
	idGenerator IDGenerator
	homeCaption string
}

// NewManageWindowsUseCase creates a new window management use case.
func NewManageWindowsUseCase(idGenerator IDGenerator, homeCaption string) *ManageWindowsUseCase {
	if homeCaption == "" {
		homeCaption = DefaultHomeCaption
	}
	return &ManageWindowsUseCase{
		idGenerator: idGenerator,
		homeCaption: homeCaption,
	}
}

// CreateWindowInput contains parameters for creating a window.
type CreateWindowInput struct {
	Kind entity.WindowKind
}

// CreateWindowOutput contains the created window.
type CreateWindowOutput struct {
	Window *entity.AggregatorWindow
	Home   *entity.Tab
}

// Create builds a window seeded with its home tab, selected.
func (uc *ManageWindowsUseCase) Create(ctx context.Context, input CreateWindowInput) (*CreateWindowOutput, error) {
	if uc.idGenerator == nil {
		return nil, fmt.Errorf("id generator is required to create a window")
	}

	windowID := entity.WindowID(uc.idGenerator())
	log := logging.FromContext(logging.WithWindowID(ctx, string(windowID)))
	home := entity.NewHomeTab(entity.TabID(uc.idGenerator()), uc.homeCaption, entity.ViewID(uc.idGenerator()))
	window := entity.NewAggregatorWindow(windowID, input.Kind, home)

	log.Debug().
		Str("kind", input.Kind.String()).
		Msg("window created")

	return &CreateWindowOutput{Window: window, Home: home}, nil
}
