package usecase

import (
	"context"
	"sort"

	"github.com/bnema/lectern/internal/application/port"
	"github.com/bnema/lectern/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput filters the returned keys.
type GetConfigSchemaInput struct {
	// Section limits output to one section. Empty returns everything.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
	// Sections lists the distinct sections of Keys in first-seen order.
	Sections []string
}

// Execute retrieves configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	seen := make(map[string]bool)
	var sections []string
	for _, k := range all {
		if input.Section != "" && k.Section != input.Section {
			continue
		}
		keys = append(keys, k)
		if !seen[k.Section] {
			seen[k.Section] = true
			sections = append(sections, k.Section)
		}
	}

	// Stable by key within a section, sections keep provider order
	order := make(map[string]int, len(sections))
	for i, s := range sections {
		order[s] = i
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].Section != keys[j].Section {
			return order[keys[i].Section] < order[keys[j].Section]
		}
		return keys[i].Key < keys[j].Key
	})

	return &GetConfigSchemaOutput{
		Keys:     keys,
		Sections: sections,
	}, nil
}
