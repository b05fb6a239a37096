// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/store"
)

// Store keys for the doctor dashboard.
const (
	KeyDoctorPatients      = "doctor_patients"
	KeyDoctorAppointments  = "doctor_appointments"
	KeyDoctorPrescriptions = "doctor_prescriptions"
)

// DoctorData is the doctor dashboard's view of the store.
type DoctorData struct {
	patients      collection[PatientRecord]
	appointments  collection[VisitSlot]
	prescriptions collection[Prescription]
}

// NewDoctorData binds the doctor collections to a store.
func NewDoctorData(st store.Store) *DoctorData {
	return &DoctorData{
		patients:      collection[PatientRecord]{store: st, key: KeyDoctorPatients},
		appointments:  collection[VisitSlot]{store: st, key: KeyDoctorAppointments},
		prescriptions: collection[Prescription]{store: st, key: KeyDoctorPrescriptions},
	}
}

// Patients returns the roster, seeding the demo patients on first use.
func (d *DoctorData) Patients() []PatientRecord {
	return d.patients.loadOrSeed([]PatientRecord{
		{
			ID:        uuid.NewString(),
			Name:      "John Doe",
			Age:       35,
			Condition: "Hypertension",
			LastVisit: "2024-01-10",
			Status:    "Stable",
			Avatar:    auth.RolePatient.AvatarURL(),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Jane Smith",
			Age:       28,
			Condition: "Diabetes Type 2",
			LastVisit: "2024-01-08",
			Status:    "Monitoring",
			Avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		},
	})
}

// Appointments returns the day's slots, seeding the demo schedule on
// first use.
func (d *DoctorData) Appointments() []VisitSlot {
	return d.appointments.loadOrSeed([]VisitSlot{
		{
			ID:      uuid.NewString(),
			Patient: "John Doe",
			Time:    "10:00 AM",
			Date:    "2024-01-15",
			Type:    "Follow-up",
			Status:  "Scheduled",
		},
		{
			ID:      uuid.NewString(),
			Patient: "Jane Smith",
			Time:    "2:00 PM",
			Date:    "2024-01-15",
			Type:    "Consultation",
			Status:  "Scheduled",
		},
	})
}

// Prescriptions returns written prescriptions; none are seeded.
func (d *DoctorData) Prescriptions() []Prescription {
	items, _ := d.prescriptions.load()
	return items
}

// AddPrescription appends the demo prescription and persists the list.
func (d *DoctorData) AddPrescription() (Prescription, error) {
	rx := Prescription{
		ID:           uuid.NewString(),
		Patient:      "John Doe",
		Medication:   "Lisinopril 10mg",
		Dosage:       "Once daily",
		Duration:     "30 days",
		Date:         time.Now().Format("1/2/2006"),
		Instructions: "Take with food",
	}
	items := d.Prescriptions()
	return rx, d.prescriptions.save(append(items, rx))
}
