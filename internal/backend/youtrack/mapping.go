package youtrack

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

// toDomainIssue performs the lossy mapping from YouTrack's native shape to
// the canonical model (spec §4.C.2).
func toDomainIssue(w wireIssue) domain.Issue {
	fields := make([]domain.CustomField, 0, len(w.Fields))
	for _, f := range w.Fields {
		fields = append(fields, toDomainField(f))
	}

	tags := make([]domain.Tag, 0, len(w.Tags))
	for _, t := range w.Tags {
		tags = append(tags, domain.Tag{ID: t.ID, Name: t.Name})
	}

	return domain.Issue{
		ID:          w.ID,
		IDReadable:  w.IDReadable,
		Summary:     w.Summary,
		Description: w.Description,
		Project:     domain.ProjectRef{ID: w.Project.ID, ShortName: w.Project.ShortName},
		Fields:      fields,
		Tags:        tags,
		Created:     millisToTime(w.Created),
		Updated:     millisToTime(w.Updated),
	}
}

func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// toDomainField maps one YouTrack custom field, using its $type to decide
// which CustomField variant to produce (spec §4.C.2: YouTrack's state
// value carries isResolved directly).
func toDomainField(w wireCustomField) domain.CustomField {
	switch {
	case strings.HasPrefix(w.Type, "State"):
		name, resolved := decodeState(w.Value)
		return domain.StateField(w.Name, name, resolved)
	case strings.HasPrefix(w.Type, "MultiEnum") || strings.HasPrefix(w.Type, "MultiVersion") || strings.HasPrefix(w.Type, "MultiBuild"):
		return domain.MultiEnumField(w.Name, decodeEnumArray(w.Value))
	case strings.HasPrefix(w.Type, "SingleEnum") || strings.HasPrefix(w.Type, "SingleVersion") || strings.HasPrefix(w.Type, "SingleBuild"):
		return domain.SingleEnumField(w.Name, decodeEnumName(w.Value))
	case strings.HasPrefix(w.Type, "SingleUser"):
		login, full := decodeUser(w.Value)
		return domain.SingleUserField(w.Name, login, full)
	case w.Type == "SimpleIssueCustomField" || w.Type == "TextIssueCustomField" || w.Type == "":
		return decodeTextOrUnknown(w.Name, w.Value)
	default:
		return domain.UnknownField(w.Name)
	}
}

func decodeState(raw json.RawMessage) (name string, resolved bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var v wireFieldValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	resolved = v.IsResolved != nil && *v.IsResolved
	return v.Name, resolved
}

func decodeEnumName(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var v wireFieldValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v.Name
}

func decodeEnumArray(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var vs []wireFieldValue
	if err := json.Unmarshal(raw, &vs); err != nil {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Name)
	}
	return out
}

func decodeUser(raw json.RawMessage) (login, full string) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", ""
	}
	var v wireFieldValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", ""
	}
	return v.Login, v.FullName
}

func decodeTextOrUnknown(name string, raw json.RawMessage) domain.CustomField {
	if len(raw) == 0 || string(raw) == "null" {
		return domain.TextField(name, "")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return domain.TextField(name, s)
	}
	return domain.UnknownField(name)
}

// fromCreateIssue builds the YouTrack create-issue request body.
func fromCreateIssue(in tracker.CreateIssue) map[string]any {
	body := map[string]any{
		"project":     map[string]any{"id": in.ProjectID},
		"summary":     in.Summary,
		"description": in.Description,
	}
	if fields := fromCustomFields(in.Fields); len(fields) > 0 {
		body["customFields"] = fields
	}
	return body
}

// fromUpdateIssue builds the YouTrack update-issue request body.
func fromUpdateIssue(in tracker.UpdateIssue) map[string]any {
	body := map[string]any{}
	if in.Summary != nil {
		body["summary"] = *in.Summary
	}
	if in.Description != nil {
		body["description"] = *in.Description
	}
	if fields := fromCustomFields(in.Fields); len(fields) > 0 {
		body["customFields"] = fields
	}
	return body
}

func fromCustomFields(fields []domain.CustomField) []map[string]any {
	out := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		switch f.Kind {
		case domain.FieldSingleEnum, domain.FieldState:
			out = append(out, map[string]any{
				"name":  f.Name,
				"value": map[string]any{"name": f.Value},
			})
		case domain.FieldMultiEnum:
			values := make([]map[string]any, 0, len(f.Values))
			for _, v := range f.Values {
				values = append(values, map[string]any{"name": v})
			}
			out = append(out, map[string]any{"name": f.Name, "value": values})
		case domain.FieldSingleUser:
			out = append(out, map[string]any{
				"name":  f.Name,
				"value": map[string]any{"login": f.Login},
			})
		case domain.FieldText:
			out = append(out, map[string]any{"name": f.Name, "value": f.Value})
		}
	}
	return out
}

// toDomainProjectCustomField maps a project custom field definition,
// establishing the ordinal-based total order on state values (spec §3.1).
func toDomainProjectCustomField(w wireProjectCustomField) domain.ProjectCustomField {
	pcf := domain.ProjectCustomField{
		ID:       w.ID,
		Name:     w.Field.Name,
		Type:     w.Field.FieldType.ID,
		Required: !w.CanBeEmpty,
	}
	if w.Bundle == nil {
		return pcf
	}
	if strings.HasPrefix(pcf.Type, "state") {
		for _, v := range w.Bundle.Values {
			pcf.StateValues = append(pcf.StateValues, domain.StateValue{
				Name: v.Name, IsResolved: v.IsResolved, Ordinal: v.Ordinal,
			})
		}
		return pcf
	}
	for _, v := range w.Bundle.Values {
		pcf.Values = append(pcf.Values, v.Name)
	}
	return pcf
}
