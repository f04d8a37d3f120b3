package harness

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

func (h *Harness) ListCustomFieldDefinitions(ctx context.Context) ([]domain.CustomFieldDefinition, error) {
	var out []domain.CustomFieldDefinition
	err := decodeInto(h, "list_custom_field_definitions", map[string]string{}, nil, &out)
	return out, err
}

func (h *Harness) CreateCustomField(ctx context.Context, in tracker.CreateCustomField) (domain.CustomFieldDefinition, error) {
	body := mustJSON(in)
	var out domain.CustomFieldDefinition
	err := decodeInto(h, "create_custom_field", map[string]string{"name": in.Name}, body, &out)
	return out, err
}

func (h *Harness) ListBundles(ctx context.Context, bundleType domain.BundleType) ([]domain.Bundle, error) {
	var out []domain.Bundle
	err := decodeInto(h, "list_bundles", map[string]string{"bundle_type": string(bundleType)}, nil, &out)
	return out, err
}

func (h *Harness) CreateBundle(ctx context.Context, in tracker.CreateBundle) (domain.Bundle, error) {
	body := mustJSON(in)
	args := map[string]string{"name": in.Name, "bundle_type": string(in.BundleType)}
	var out domain.Bundle
	err := decodeInto(h, "create_bundle", args, body, &out)
	return out, err
}

func (h *Harness) AddBundleValues(ctx context.Context, bundleID string, bundleType domain.BundleType, values []tracker.CreateBundleValue) ([]domain.BundleValue, error) {
	body := mustJSON(values)
	args := map[string]string{"bundle_id": bundleID, "bundle_type": string(bundleType)}
	var out []domain.BundleValue
	err := decodeInto(h, "add_bundle_values", args, body, &out)
	return out, err
}

func (h *Harness) AttachFieldToProject(ctx context.Context, projectID string, in tracker.AttachFieldToProject) (domain.ProjectCustomField, error) {
	body := mustJSON(in)
	args := map[string]string{"project_id": projectID, "field_id": in.FieldID}
	var out domain.ProjectCustomField
	err := decodeInto(h, "attach_field_to_project", args, body, &out)
	return out, err
}
