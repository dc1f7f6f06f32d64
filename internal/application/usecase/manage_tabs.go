package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

var (
	// ErrWindowRequired is returned when an operation is given a nil window.
	ErrWindowRequired = errors.New("window is required")
	// ErrTabNotInWindow is returned when a tab is not hosted by the given window.
	ErrTabNotInWindow = errors.New("tab not in window")
	// ErrTabNotClosable is returned when closing a fixed tab.
	ErrTabNotClosable = errors.New("tab is not closable")
)

// ManageTabsUseCase handles tab lifecycle operations inside one window.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
	}
}

// OpenTabInput contains parameters for opening a new tab.
type OpenTabInput struct {
	Window  *entity.AggregatorWindow
	Caption string
	View    entity.ViewID // Optional; generated when empty
	Loading bool
}

// OpenTabOutput contains the result of tab creation.
type OpenTabOutput struct {
	Tab   *entity.Tab
	Index int
}

// Open appends a closable tab to the window and selects it.
func (uc *ManageTabsUseCase) Open(ctx context.Context, input OpenTabInput) (*OpenTabOutput, error) {
	log := logging.FromContext(ctx)

	if input.Window == nil {
		return nil, ErrWindowRequired
	}
	if uc.idGenerator == nil {
		return nil, fmt.Errorf("id generator is required to open a tab")
	}

	tabID := entity.TabID(uc.idGenerator())
	view := input.View
	if view == "" {
		view = entity.ViewID(uc.idGenerator())
	}

	tab := entity.NewTab(tabID, input.Caption, view)
	tab.Loading = input.Loading
	input.Window.Tabs.Add(tab)
	input.Window.Tabs.Select(tab.ID)

	index := input.Window.Tabs.IndexOf(tab.ID)
	log.Info().
		Str("window_id", string(input.Window.ID)).
		Str("tab_id", string(tabID)).
		Str("caption", input.Caption).
		Int("position", index).
		Msg("tab opened")

	return &OpenTabOutput{Tab: tab, Index: index}, nil
}

// Select changes the active tab of a window.
func (uc *ManageTabsUseCase) Select(ctx context.Context, window *entity.AggregatorWindow, tabID entity.TabID) error {
	log := logging.FromContext(ctx)

	if window == nil {
		return ErrWindowRequired
	}

	oldActive := window.Tabs.ActiveTabID
	if !window.Tabs.Select(tabID) {
		return fmt.Errorf("%w: %s", ErrTabNotInWindow, tabID)
	}

	log.Debug().
		Str("window_id", string(window.ID)).
		Str("from", string(oldActive)).
		Str("to", string(tabID)).
		Msg("tab selected")

	return nil
}

// CloseTabOutput contains the result of closing a tab.
type CloseTabOutput struct {
	Closed bool
	// WindowAbandoned is set when a satellite window has no draggable tab left.
	WindowAbandoned bool
}

// Close removes a closable tab from its window.
// A tab already gone is not an error.
func (uc *ManageTabsUseCase) Close(ctx context.Context, window *entity.AggregatorWindow, tabID entity.TabID) (*CloseTabOutput, error) {
	ctx = logging.WithTabID(ctx, string(tabID))
	log := logging.FromContext(ctx)

	if window == nil {
		return nil, ErrWindowRequired
	}

	tab := window.Tabs.Find(tabID)
	if tab == nil {
		log.Debug().Msg("tab not found")
		return &CloseTabOutput{}, nil
	}
	if !tab.Closable {
		return nil, fmt.Errorf("%w: %s", ErrTabNotClosable, tabID)
	}

	window.Tabs.Remove(tabID)

	log.Info().
		Str("window_id", string(window.ID)).
		Str("new_active", string(window.Tabs.ActiveTabID)).
		Int("remaining", window.Tabs.Count()).
		Msg("tab closed")

	return &CloseTabOutput{Closed: true, WindowAbandoned: window.IsAbandoned()}, nil
}
