// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package actions

// Action names a portal feature a view can invoke.
type Action string

const (
	// ActionVideoConsult starts a video consultation.
	ActionVideoConsult Action = "video_consult"

	// ActionMessaging opens doctor/patient messaging.
	ActionMessaging Action = "messaging"

	// ActionAssignDoctor assigns a doctor to a patient (admin).
	ActionAssignDoctor Action = "assign_doctor"

	// ActionModerateContent opens content moderation (admin).
	ActionModerateContent Action = "moderate_content"

	// ActionGenerateReport generates an activity report (admin).
	ActionGenerateReport Action = "generate_report"
)

// Status reports how an invocation ended.
type Status int

const (
	// StatusDone means the action completed.
	StatusDone Status = iota

	// StatusNotImplemented means the feature does not exist yet; the UI
	// shows its standard placeholder notice.
	StatusNotImplemented
)

// Result is what a view renders after invoking an action.
type Result struct {
	Action  Action
	Status  Status
	Message string
}

// NotImplemented reports whether the result is the placeholder outcome.
func (r Result) NotImplemented() bool {
	return r.Status == StatusNotImplemented
}

// Dispatcher executes portal actions.
type Dispatcher interface {
	Invoke(a Action) Result
}

// StubDispatcher answers every action with NotImplemented. It is the only
// dispatcher the portal ships today.
type StubDispatcher struct{}

// NewStubDispatcher creates the placeholder dispatcher.
func NewStubDispatcher() *StubDispatcher {
	return &StubDispatcher{}
}

// Invoke returns the standard placeholder result for any action.
func (d *StubDispatcher) Invoke(a Action) Result {
	return Result{
		Action:  a,
		Status:  StatusNotImplemented,
		Message: "This feature isn't implemented yet.",
	}
}
