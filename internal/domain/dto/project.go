package dto

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/entity"
	"designermonk/internal/domain/model"
)

// Text fields of a project, by their wire (and document) name.
var textFields = []string{
	"title", "projectName", "category", "style", "layout", "location",
	"pricing", "bhk", "scope", "propertyType", "size",
}

// ProjectInput holds the project fields present in a request. Absent fields
// are left out of Text and nil for the prices.
type ProjectInput struct {
	Text     map[string]string
	Status   *string
	PriceMin *float64
	PriceMax *float64
}

// ParseProjectInput reads project fields from form values. Prices are
// coerced to numbers; an empty price is treated as absent.
func ParseProjectInput(values url.Values) (ProjectInput, error) {
	input := ProjectInput{Text: make(map[string]string)}

	for _, name := range textFields {
		if _, ok := values[name]; ok {
			input.Text[name] = strings.TrimSpace(values.Get(name))
		}
	}

	if status := strings.TrimSpace(values.Get("status")); status != "" {
		if !model.ValidStatus(status) {
			return ProjectInput{}, apperror.New(apperror.InvalidField,
				fmt.Sprintf("invalid status %q", status), nil)
		}
		input.Status = &status
	}

	var err error
	if input.PriceMin, err = parsePrice(values, "priceMin"); err != nil {
		return ProjectInput{}, err
	}
	if input.PriceMax, err = parsePrice(values, "priceMax"); err != nil {
		return ProjectInput{}, err
	}

	return input, nil
}

// ValuesFromJSON flattens a decoded JSON object into form values so JSON and
// multipart bodies go through the same parser.
func ValuesFromJSON(body map[string]any) (url.Values, error) {
	values := url.Values{}
	for key, raw := range body {
		switch v := raw.(type) {
		case nil:
		case string:
			values.Set(key, v)
		case float64:
			values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		case json.Number:
			values.Set(key, v.String())
		case bool:
			values.Set(key, strconv.FormatBool(v))
		default:
			return nil, apperror.New(apperror.InvalidField,
				fmt.Sprintf("field %q must be a string or a number", key), nil)
		}
	}

	return values, nil
}

func parsePrice(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil //nolint
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.New(apperror.InvalidField,
			fmt.Sprintf("%s must be a number", name), err)
	}

	return &v, nil
}

// NewProject builds the record to insert, applying the default status.
func (in ProjectInput) NewProject(image entity.StoredImage) *model.Project {
	p := &model.Project{
		Title:        in.Text["title"],
		ProjectName:  in.Text["projectName"],
		Category:     in.Text["category"],
		Style:        in.Text["style"],
		Layout:       in.Text["layout"],
		Location:     in.Text["location"],
		Pricing:      in.Text["pricing"],
		BHK:          in.Text["bhk"],
		Scope:        in.Text["scope"],
		PropertyType: in.Text["propertyType"],
		Size:         in.Text["size"],
		Status:       model.StatusDelivered,
		PriceMin:     in.PriceMin,
		PriceMax:     in.PriceMax,
		ImageURL:     image.URL,
		Image:        &image,
	}

	if in.Status != nil {
		p.Status = *in.Status
	}

	return p
}

// Changes returns the document fields to set for a partial update.
func (in ProjectInput) Changes() map[string]any {
	changes := make(map[string]any, len(in.Text)+3)
	for name, value := range in.Text {
		changes[name] = value
	}

	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.PriceMin != nil {
		changes["priceMin"] = *in.PriceMin
	}
	if in.PriceMax != nil {
		changes["priceMax"] = *in.PriceMax
	}

	return changes
}
