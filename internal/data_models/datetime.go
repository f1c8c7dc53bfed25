package dto

import (
	"encoding/json"
	"strings"
	"time"

	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
	"smart-task-planner.com/smart-task-planner/internal/planner"
)

// LocalDateTime is a timestamp written as 2006-01-02T15:04:05 with no zone.
// All values are UTC.
type LocalDateTime struct {
	time.Time
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.UTC()}
}

func (d LocalDateTime) String() string {
	return d.UTC().Format(planner.LocalDateTimeLayout)
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *LocalDateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return apperrors.ErrInvalidTargetDate
	}
	t, ok := planner.ParseDateTime(s)
	if !ok {
		return apperrors.ErrInvalidTargetDate
	}
	d.Time = t
	return nil
}

func (d LocalDateTime) MarshalYAML() (any, error) {
	return d.String(), nil
}

// OptionalDateTime is a LocalDateTime that may be null or blank on input.
type OptionalDateTime struct {
	value *LocalDateTime
}

func (o OptionalDateTime) Ptr() *time.Time {
	if o.value == nil {
		return nil
	}
	t := o.value.Time
	return &t
}

func (o OptionalDateTime) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return o.value.MarshalJSON()
}

func (o *OptionalDateTime) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" || trimmed == `""` {
		o.value = nil
		return nil
	}
	var d LocalDateTime
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	o.value = &d
	return nil
}

func OptionalFrom(t *time.Time) OptionalDateTime {
	if t == nil {
		return OptionalDateTime{}
	}
	d := NewLocalDateTime(*t)
	return OptionalDateTime{value: &d}
}

func (o OptionalDateTime) MarshalYAML() (any, error) {
	if o.value == nil {
		return nil, nil
	}
	return o.value.String(), nil
}
