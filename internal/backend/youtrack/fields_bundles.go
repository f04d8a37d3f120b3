package youtrack

import (
	"context"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

// Custom field / bundle administration against YouTrack's
// /api/admin/customFieldSettings endpoints: YouTrack is the one backend in
// this repo with a native global-field + bundle admin model, so it is the
// only adapter that talks to the real API here (spec.md's equivalent of
// "track field"/"track bundle"; the other three adapters return empty
// lists from reads and InvalidInput from writes, since none of them has a
// matching capability).

const customFieldFields = "id,name,fieldType(id)"

func (c *Client) ListCustomFieldDefinitions(ctx context.Context) ([]domain.CustomFieldDefinition, error) {
	var wires []wireCustomFieldDefinition
	q := url.Values{"fields": {customFieldFields}}
	if err := c.doRequest(ctx, "GET", "/api/admin/customFieldSettings/customFields", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.CustomFieldDefinition, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.CustomFieldDefinition{ID: w.ID, Name: w.Name, FieldType: fieldTypeIDToDomain(w.FieldType.ID)})
	}
	return out, nil
}

func (c *Client) CreateCustomField(ctx context.Context, in tracker.CreateCustomField) (domain.CustomFieldDefinition, error) {
	body := map[string]any{
		"name":      in.Name,
		"fieldType": map[string]any{"id": domainFieldTypeToID(in.FieldType)},
	}
	var w wireCustomFieldDefinition
	q := url.Values{"fields": {customFieldFields}}
	if err := c.doRequest(ctx, "POST", "/api/admin/customFieldSettings/customFields", q, body, &w); err != nil {
		return domain.CustomFieldDefinition{}, err
	}
	return domain.CustomFieldDefinition{ID: w.ID, Name: w.Name, FieldType: fieldTypeIDToDomain(w.FieldType.ID)}, nil
}

const bundleValueFields = "id,name,description,isResolved,ordinal"

func (c *Client) ListBundles(ctx context.Context, bundleType domain.BundleType) ([]domain.Bundle, error) {
	var wires []wireBundleAdmin
	q := url.Values{"fields": {"id,name,values(" + bundleValueFields + ")"}}
	if err := c.doRequest(ctx, "GET", "/api/admin/customFieldSettings/bundles/"+bundlePathSegment(bundleType), q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Bundle, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainBundle(w, bundleType))
	}
	return out, nil
}

func (c *Client) CreateBundle(ctx context.Context, in tracker.CreateBundle) (domain.Bundle, error) {
	body := map[string]any{
		"name":   in.Name,
		"values": toWireBundleValues(in.Values),
	}
	var w wireBundleAdmin
	q := url.Values{"fields": {"id,name,values(" + bundleValueFields + ")"}}
	if err := c.doRequest(ctx, "POST", "/api/admin/customFieldSettings/bundles/"+bundlePathSegment(in.BundleType), q, body, &w); err != nil {
		return domain.Bundle{}, err
	}
	return toDomainBundle(w, in.BundleType), nil
}

func (c *Client) AddBundleValues(ctx context.Context, bundleID string, bundleType domain.BundleType, values []tracker.CreateBundleValue) ([]domain.BundleValue, error) {
	path := "/api/admin/customFieldSettings/bundles/" + bundlePathSegment(bundleType) + "/" + url.PathEscape(bundleID) + "/values"
	q := url.Values{"fields": {bundleValueFields}}

	out := make([]domain.BundleValue, 0, len(values))
	for _, v := range values {
		body := toWireBundleValue(v)
		var w wireBundleValueAdmin
		if err := c.doRequest(ctx, "POST", path, q, body, &w); err != nil {
			return nil, err
		}
		out = append(out, toDomainBundleValue(w))
	}
	return out, nil
}

func (c *Client) AttachFieldToProject(ctx context.Context, projectID string, in tracker.AttachFieldToProject) (domain.ProjectCustomField, error) {
	body := map[string]any{
		"field":          map[string]any{"id": in.FieldID},
		"canBeEmpty":     in.CanBeEmpty,
		"emptyFieldText": in.EmptyFieldText,
	}
	if in.BundleID != "" {
		body["bundle"] = map[string]any{"id": in.BundleID}
	}
	var w wireProjectCustomField
	q := url.Values{"fields": {"id,field(name,fieldType(id)),canBeEmpty,bundle(values(name,isResolved,ordinal))"}}
	if err := c.doRequest(ctx, "POST", "/api/admin/projects/"+url.PathEscape(projectID)+"/customFields", q, body, &w); err != nil {
		return domain.ProjectCustomField{}, err
	}
	return toDomainProjectCustomField(w), nil
}

func bundlePathSegment(t domain.BundleType) string {
	switch t {
	case domain.BundleState:
		return "state"
	case domain.BundleOwnedField:
		return "ownedField"
	case domain.BundleVersion:
		return "version"
	case domain.BundleBuild:
		return "build"
	default:
		return "enum"
	}
}

func fieldTypeIDToDomain(id string) domain.CustomFieldType {
	switch id {
	case "enum[*]":
		return domain.CustomFieldTypeMultiEnum
	case "state[1]":
		return domain.CustomFieldTypeState
	case "date[1]":
		return domain.CustomFieldTypeDate
	case "integer[1]":
		return domain.CustomFieldTypeInteger
	case "float[1]":
		return domain.CustomFieldTypeFloat
	case "period[1]":
		return domain.CustomFieldTypePeriod
	case "text[1]":
		return domain.CustomFieldTypeText
	default:
		return domain.CustomFieldTypeSingleEnum
	}
}

func domainFieldTypeToID(t domain.CustomFieldType) string {
	switch t {
	case domain.CustomFieldTypeMultiEnum:
		return "enum[*]"
	case domain.CustomFieldTypeState:
		return "state[1]"
	case domain.CustomFieldTypeDate:
		return "date[1]"
	case domain.CustomFieldTypeInteger:
		return "integer[1]"
	case domain.CustomFieldTypeFloat:
		return "float[1]"
	case domain.CustomFieldTypePeriod:
		return "period[1]"
	case domain.CustomFieldTypeText:
		return "text[1]"
	default:
		return "enum[1]"
	}
}

func toWireBundleValues(values []tracker.CreateBundleValue) []map[string]any {
	out := make([]map[string]any, 0, len(values))
	for _, v := range values {
		out = append(out, toWireBundleValue(v))
	}
	return out
}

func toWireBundleValue(v tracker.CreateBundleValue) map[string]any {
	body := map[string]any{"name": v.Name, "description": v.Description}
	if v.IsResolved != nil {
		body["isResolved"] = *v.IsResolved
	}
	if v.Ordinal != nil {
		body["ordinal"] = *v.Ordinal
	}
	return body
}

func toDomainBundle(w wireBundleAdmin, t domain.BundleType) domain.Bundle {
	values := make([]domain.BundleValue, 0, len(w.Values))
	for _, v := range w.Values {
		values = append(values, toDomainBundleValue(v))
	}
	return domain.Bundle{ID: w.ID, Name: w.Name, Type: t, Values: values}
}

func toDomainBundleValue(w wireBundleValueAdmin) domain.BundleValue {
	return domain.BundleValue{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		IsResolved:  w.IsResolved,
		Ordinal:     w.Ordinal,
	}
}
