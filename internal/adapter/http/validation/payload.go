package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

var dueDateLayouts = []string{"2006-01-02", time.RFC3339Nano, time.RFC3339}

// ParseDueDate accepts a calendar date or an RFC3339 timestamp. A blank
// value means no due date.
func ParseDueDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		parsed, err := time.Parse(layout, strings.TrimSpace(*value))
		if err == nil {
			utc := parsed.UTC()
			return &utc, nil
		}
	}
	return nil, domain.ErrInvalidDueDate
}

func BuildCreateTaskInput(req dto.CreateTaskRequest) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if explicitNull(raw, "title") || explicitNull(raw, "status") {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	input := domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	return input, nil
}

func BuildCreateSubTaskInput(req dto.CreateSubTaskRequest) (domain.CreateSubTaskInput, error) {
	dueDate, err := ParseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateSubTaskInput{}, err
	}

	return domain.CreateSubTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		AssignedUserID: req.AssignedUserID,
		DueDate:        dueDate,
	}, nil
}

func BuildUpdateSubTaskInput(req dto.UpdateSubTaskRequest, raw map[string]json.RawMessage) (domain.UpdateSubTaskInput, error) {
	if explicitNull(raw, "title") || explicitNull(raw, "status") {
		return domain.UpdateSubTaskInput{}, ErrInvalidPayload
	}

	dueDate, err := ParseDueDate(req.DueDate)
	if err != nil {
		return domain.UpdateSubTaskInput{}, err
	}

	input := domain.UpdateSubTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	return input, nil
}

func explicitNull(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
