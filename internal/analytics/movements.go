package analytics

import (
	"crmdigest/internal/models"
	"fmt"
)

const (
	UnknownPipeline     = "Unknown Pipeline"
	movementDescription = "Deal updated"
)

// DeriveMovements emits one movement per deal updated inside the window.
// It cannot tell stage changes from other edits: the CRM offers no cheap
// change log for a whole day.
func DeriveMovements(deals []models.Deal, w Window, pipelines []models.Pipeline) []models.Movement {
	names := make(map[models.ID]string, len(pipelines))
	for _, p := range pipelines {
		names[p.ID] = p.Name
	}

	movements := make([]models.Movement, 0)
	for _, d := range deals {
		if !w.Contains(d.UpdateTime) {
			continue
		}
		name, ok := names[d.PipelineID]
		if !ok || name == "" {
			name = UnknownPipeline
		}
		movements = append(movements, models.Movement{
			ID:           fmt.Sprintf("deal_update_%d", d.ID),
			DealID:       d.ID,
			DealTitle:    d.Title,
			Owner:        d.Owner,
			Description:  movementDescription,
			ChangeDate:   d.UpdateTime,
			PipelineID:   d.PipelineID,
			PipelineName: name,
		})
	}
	return movements
}
