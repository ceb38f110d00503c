package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

// AttributeValueInput is one submitted child row on the attribute create
// form, in submission order.
type AttributeValueInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor6"`
}

// ReconcileInput is the edit-form wire shape: two parallel maps sharing
// row keys plus a comma-joined deletion list. Numeric keys address
// persisted rows; any other key (the UI sends temp-N) marks a new row.
type ReconcileInput struct {
	ValueNames    map[string]string `json:"value_name"`
	Colors        map[string]string `json:"color"`
	DeletedValues string            `json:"deleted_values"`
}

type AttributeValueReconciler struct {
	db *gorm.DB
}

func NewAttributeValueReconciler(db *gorm.DB) *AttributeValueReconciler {
	return &AttributeValueReconciler{db: db}
}

// CreateValues inserts the initial value rows for a freshly created
// attribute, indexed 1..n in submission order.
func (s *AttributeValueReconciler) CreateValues(ctx context.Context, attribute *models.Attribute, values []AttributeValueInput) error {
	if len(values) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, input := range values {
			value := models.AttributeValue{
				AttributeID: attribute.ID,
				Name:        input.Name,
				Slug:        helpers.GenerateSlug(input.Name),
				Index:       i + 1,
				Status:      models.StatusActive,
				Color:       colorFor(attribute, input.Color),
			}
			if err := tx.Create(&value).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Reconcile applies the three-way diff (delete list, update set, insert
// set) against the attribute's persisted value rows. The whole edit runs
// in one transaction: a failing row rolls back the entire submission.
func (s *AttributeValueReconciler) Reconcile(ctx context.Context, attribute *models.Attribute, in ReconcileInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deletedIDs := parseIDList(in.DeletedValues)
		if len(deletedIDs) > 0 {
			// Ownership-scoped: ids belonging to another attribute are ignored.
			err := tx.Where("id IN ? AND attribute_id = ?", deletedIDs, attribute.ID).
				Delete(&models.AttributeValue{}).Error
			if err != nil {
				return err
			}
		}

		for _, key := range orderedKeys(in.ValueNames) {
			name := in.ValueNames[key]
			color := colorFor(attribute, in.Colors[key])

			if id, err := strconv.ParseUint(key, 10, 64); err == nil {
				var value models.AttributeValue
				err := tx.Where("id = ? AND attribute_id = ?", id, attribute.ID).First(&value).Error
				if err == gorm.ErrRecordNotFound {
					continue
				}
				if err != nil {
					return err
				}

				value.Name = name
				value.Slug = helpers.GenerateSlug(name)
				value.Color = color
				if err := tx.Save(&value).Error; err != nil {
					return err
				}
				continue
			}

			var maxIndex int
			err := tx.Model(&models.AttributeValue{}).
				Where("attribute_id = ?", attribute.ID).
				Select("COALESCE(MAX(`index`), 0)").
				Scan(&maxIndex).Error
			if err != nil {
				return err
			}

			value := models.AttributeValue{
				AttributeID: attribute.ID,
				Name:        name,
				Slug:        helpers.GenerateSlug(name),
				Index:       maxIndex + 1,
				Status:      models.StatusActive,
				Color:       color,
			}
			if err := tx.Create(&value).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// colorFor enforces the color policy: only color attributes keep a
// submitted color, everything else is forced to null.
func colorFor(attribute *models.Attribute, color string) *string {
	if attribute.IsColor && color != "" {
		return &color
	}
	return nil
}

func parseIDList(raw string) []uint64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var ids []uint64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// orderedKeys makes map iteration deterministic: existing rows (numeric
// keys, ascending) first, then new rows by key.
func orderedKeys(m map[string]string) []string {
	numeric := make([]string, 0, len(m))
	fresh := make([]string, 0, len(m))
	for key := range m {
		if _, err := strconv.ParseUint(key, 10, 64); err == nil {
			numeric = append(numeric, key)
		} else {
			fresh = append(fresh, key)
		}
	}

	sort.Slice(numeric, func(i, j int) bool {
		a, _ := strconv.ParseUint(numeric[i], 10, 64)
		b, _ := strconv.ParseUint(numeric[j], 10, 64)
		return a < b
	})
	sort.Strings(fresh)

	return append(numeric, fresh...)
}
