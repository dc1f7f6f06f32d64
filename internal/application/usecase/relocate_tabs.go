package usecase

import (
	"context"
	"fmt"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/logging"
)

// RelocateTabsUseCase moves tabs within and across aggregator windows.
//
// It is pure domain manipulation. Every operation is a no-op, not an error, when
// the tab is already absent from the claimed source: preview-time relocation and
// the final commit may race over the same tab.
type RelocateTabsUseCase struct {
	windows *ManageWindowsUseCase
}

// NewRelocateTabsUseCase creates the relocation use case.
func NewRelocateTabsUseCase(windows *ManageWindowsUseCase) *RelocateTabsUseCase {
	return &RelocateTabsUseCase{windows: windows}
}

// ReorderInput places a tab at a new slot of its own window.
type ReorderInput struct {
	Window      *entity.AggregatorWindow
	TabID       entity.TabID
	TargetIndex int
}

// ReorderOutput reports the applied move.
type ReorderOutput struct {
	Moved bool
	From  int
	To    int
}

// Reorder moves the tab to TargetIndex, shifting the others. Equal or negative
// indices are no-ops. Targets are clamped to the draggable range.
func (uc *RelocateTabsUseCase) Reorder(ctx context.Context, input ReorderInput) (*ReorderOutput, error) {
	log := logging.FromContext(ctx)

	if input.Window == nil {
		return nil, ErrWindowRequired
	}

	tabs := input.Window.Tabs
	from := tabs.IndexOf(input.TabID)
	out := &ReorderOutput{From: from, To: from}
	if from < 0 || input.TargetIndex < 0 || from == input.TargetIndex {
		return out, nil
	}

	to := input.TargetIndex
	if last := tabs.Count() - 1; to > last {
		to = last
	}
	if first := tabs.FirstDraggableIndex(); to < first {
		to = first
	}
	if to == from {
		return out, nil
	}

	if !tabs.Move(input.TabID, to) {
		return nil, fmt.Errorf("failed to move tab %s to position %d", input.TabID, to)
	}

	log.Debug().
		Str("window_id", string(input.Window.ID)).
		Str("tab_id", string(input.TabID)).
		Int("from", from).
		Int("to", to).
		Msg("tab reordered")

	out.Moved = true
	out.To = to
	return out, nil
}

// MoveInput moves a tab from one window to another.
type MoveInput struct {
	Source      *entity.AggregatorWindow
	Target      *entity.AggregatorWindow
	TabID       entity.TabID
	TargetIndex int
}

// MoveOutput reports where the tab landed.
type MoveOutput struct {
	Moved bool
	Tab   *entity.Tab
	Index int
}

// MoveBetween detaches the tab from Source without destroying its view, appends
// it to Target, selects it there and then reorders it to TargetIndex.
func (uc *RelocateTabsUseCase) MoveBetween(ctx context.Context, input MoveInput) (*MoveOutput, error) {
	log := logging.FromContext(ctx)

	if input.Source == nil || input.Target == nil {
		return nil, ErrWindowRequired
	}
	if input.Source == input.Target {
		return &MoveOutput{Index: input.Source.Tabs.IndexOf(input.TabID)}, nil
	}

	tab := input.Source.Tabs.Find(input.TabID)
	if tab == nil {
		log.Debug().
			Str("window_id", string(input.Source.ID)).
			Str("tab_id", string(input.TabID)).
			Msg("tab already gone from source, skipping move")
		return &MoveOutput{Index: -1}, nil
	}

	input.Source.Tabs.Remove(tab.ID)
	input.Target.Tabs.Add(tab)
	input.Target.Tabs.Select(tab.ID)

	reordered, err := uc.Reorder(ctx, ReorderInput{
		Window:      input.Target,
		TabID:       tab.ID,
		TargetIndex: input.TargetIndex,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("tab_id", string(tab.ID)).
		Str("from_window", string(input.Source.ID)).
		Str("to_window", string(input.Target.ID)).
		Int("position", reordered.To).
		Msg("tab moved between windows")

	return &MoveOutput{Moved: true, Tab: tab, Index: reordered.To}, nil
}

// DetachInput moves a tab into a freshly created satellite window.
type DetachInput struct {
	Source *entity.AggregatorWindow
	TabID  entity.TabID
}

// DetachOutput carries the new window.
type DetachOutput struct {
	Detached bool
	Window   *entity.AggregatorWindow
	Tab      *entity.Tab
	Index    int
}

// Detach creates a satellite window and makes the tab its first draggable tab,
// selected.
func (uc *RelocateTabsUseCase) Detach(ctx context.Context, input DetachInput) (*DetachOutput, error) {
	log := logging.FromContext(ctx)

	if input.Source == nil {
		return nil, ErrWindowRequired
	}
	if uc.windows == nil {
		return nil, fmt.Errorf("window use case is required to detach a tab")
	}

	tab := input.Source.Tabs.Find(input.TabID)
	if tab == nil {
		log.Debug().
			Str("window_id", string(input.Source.ID)).
			Str("tab_id", string(input.TabID)).
			Msg("tab already gone from source, skipping detach")
		return &DetachOutput{Index: -1}, nil
	}

	created, err := uc.windows.Create(ctx, CreateWindowInput{Kind: entity.WindowSatellite})
	if err != nil {
		return nil, fmt.Errorf("create window for detached tab: %w", err)
	}
	window := created.Window

	input.Source.Tabs.Remove(tab.ID)
	window.Tabs.Insert(tab, window.Tabs.FirstDraggableIndex())
	window.Tabs.Select(tab.ID)

	log.Info().
		Str("tab_id", string(tab.ID)).
		Str("from_window", string(input.Source.ID)).
		Str("to_window", string(window.ID)).
		Msg("tab detached to new window")

	return &DetachOutput{
		Detached: true,
		Window:   window,
		Tab:      tab,
		Index:    window.Tabs.IndexOf(tab.ID),
	}, nil
}
