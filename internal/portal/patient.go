// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/careconnect-tui/internal/store"
)

// Store keys for the patient dashboard.
const (
	KeyPatientAppointments = "patient_appointments"
	KeyPatientHealthData   = "patient_health_data"
	KeyPatientDocuments    = "patient_documents"
)

// PatientData is the patient dashboard's view of the store.
type PatientData struct {
	appointments collection[Appointment]
	vitals       single[Vitals]
	documents    collection[Document]
}

// NewPatientData binds the patient collections to a store.
func NewPatientData(st store.Store) *PatientData {
	return &PatientData{
		appointments: collection[Appointment]{store: st, key: KeyPatientAppointments},
		vitals:       single[Vitals]{store: st, key: KeyPatientHealthData},
		documents:    collection[Document]{store: st, key: KeyPatientDocuments},
	}
}

// Appointments returns the patient's appointments; none are seeded.
func (p *PatientData) Appointments() []Appointment {
	items, _ := p.appointments.load()
	return items
}

// BookAppointment appends the demo appointment record and persists the
// updated list.
func (p *PatientData) BookAppointment() (Appointment, error) {
	appt := Appointment{
		ID:        uuid.NewString(),
		Doctor:    "Dr. Sarah Smith",
		Specialty: "General Medicine",
		Date:      "2024-01-15",
		Time:      "10:00 AM",
		Status:    "Scheduled",
		Type:      "In-person",
	}
	items := p.Appointments()
	return appt, p.appointments.save(append(items, appt))
}

// Vitals returns the recorded health data; zero values when none saved.
func (p *PatientData) Vitals() Vitals {
	v, _ := p.vitals.load()
	return v
}

// SaveVitals records the patient's health data.
func (p *PatientData) SaveVitals(v Vitals) error {
	return p.vitals.save(v)
}

// Documents returns the patient's uploaded documents.
func (p *PatientData) Documents() []Document {
	items, _ := p.documents.load()
	return items
}

// UploadDocument appends the demo document record and persists the list.
func (p *PatientData) UploadDocument() (Document, error) {
	doc := Document{
		ID:   uuid.NewString(),
		Name: "Lab Report - Blood Test",
		Type: "PDF",
		Date: time.Now().Format("1/2/2006"),
		Size: "2.4 MB",
	}
	items := p.Documents()
	return doc, p.documents.save(append(items, doc))
}
