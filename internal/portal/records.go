// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

// =============================================================================
// PATIENT RECORDS
// =============================================================================

// Appointment is a patient-side appointment entry.
type Appointment struct {
	ID        string `json:"id"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Type      string `json:"type"`
}

// Vitals is the patient's self-recorded health data. All fields are
// free-form strings, exactly as typed.
type Vitals struct {
	BloodPressure string `json:"bloodPressure"`
	HeartRate     string `json:"heartRate"`
	Weight        string `json:"weight"`
	Temperature   string `json:"temperature"`
	BloodSugar    string `json:"bloodSugar"`
}

// Document is an uploaded patient document entry.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Date string `json:"date"`
	Size string `json:"size"`
}

// =============================================================================
// DOCTOR RECORDS
// =============================================================================

// PatientRecord is an entry in the doctor's patient roster.
type PatientRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Condition string `json:"condition"`
	LastVisit string `json:"lastVisit"`
	Status    string `json:"status"`
	Avatar    string `json:"avatar"`
}

// VisitSlot is a doctor-side appointment entry.
type VisitSlot struct {
	ID      string `json:"id"`
	Patient string `json:"patient"`
	Time    string `json:"time"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

// Prescription is a prescription written by the doctor.
type Prescription struct {
	ID           string `json:"id"`
	Patient      string `json:"patient"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Duration     string `json:"duration"`
	Date         string `json:"date"`
	Instructions string `json:"instructions"`
}

// =============================================================================
// ADMIN RECORDS
// =============================================================================

// ManagedUser is an entry in the admin's user management list.
type ManagedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	JoinDate string `json:"joinDate"`
	Avatar   string `json:"avatar"`
}

// DoctorProfile is an entry in the admin's doctor directory.
type DoctorProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Patients   int     `json:"patients"`
	Status     string  `json:"status"`
	Rating     float64 `json:"rating"`
	Experience string  `json:"experience"`
}

// Stats summarizes the admin dashboard counters.
type Stats struct {
	TotalUsers    int
	TotalDoctors  int
	TotalPatients int
	ActiveUsers   int
}
