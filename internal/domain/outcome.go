package domain

import (
	"errors"
	"fmt"
	"time"
)

type Action string

const (
	ActionPin      Action = "pin"
	ActionUnpin    Action = "unpin"
	ActionGroup    Action = "group"
	ActionClose    Action = "close"
	ActionActivate Action = "activate"

	// ActionNameGroup is recorded with the group id and no tab id.
	ActionNameGroup Action = "name_group"
)

type Outcome struct {
	TabID   TabID
	Action  Action
	GroupID GroupID
	Err     error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

type Report struct {
	PassID     string
	StartedAt  time.Time
	FinishedAt time.Time
	Skipped    bool
	Outcomes   []Outcome
}

func (r *Report) Record(tabID TabID, action Action, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{TabID: tabID, Action: action, Err: err})
}

func (r *Report) RecordGroup(tabID TabID, groupID GroupID, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{TabID: tabID, Action: ActionGroup, GroupID: groupID, Err: err})
}

func (r Report) Succeeded(action Action) []TabID {
	ids := make([]TabID, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Action == action && o.OK() {
			ids = append(ids, o.TabID)
		}
	}

	return ids
}

func (r Report) Failed() []Outcome {
	failed := make([]Outcome, 0)
	for _, o := range r.Outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}

	return failed
}

// Err joins every failed outcome into one error, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, o := range r.Failed() {
		if o.TabID == 0 {
			errs = append(errs, fmt.Errorf("%s group %d: %w", o.Action, o.GroupID, o.Err))
			continue
		}
		errs = append(errs, fmt.Errorf("%s tab %d: %w", o.Action, o.TabID, o.Err))
	}

	return errors.Join(errs...)
}
