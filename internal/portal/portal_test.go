// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"errors"
	"testing"

	"github.com/jeranaias/careconnect-tui/internal/store"
)

// =============================================================================
// PATIENT DATA TESTS
// =============================================================================

func TestPatientData_StartsEmpty(t *testing.T) {
	p := NewPatientData(store.NewMemStore())

	if got := p.Appointments(); len(got) != 0 {
		t.Errorf("appointments should start empty, got %d", len(got))
	}
	if got := p.Documents(); len(got) != 0 {
		t.Errorf("documents should start empty, got %d", len(got))
	}
	if v := p.Vitals(); v != (Vitals{}) {
		t.Errorf("vitals should start zero, got %+v", v)
	}
}

func TestPatientData_BookAppointment(t *testing.T) {
	st := store.NewMemStore()
	p := NewPatientData(st)

	appt, err := p.BookAppointment()
	if err != nil {
		t.Fatal(err)
	}
	if appt.Doctor != "Dr. Sarah Smith" || appt.Status != "Scheduled" {
		t.Errorf("unexpected canned appointment: %+v", appt)
	}

	// Rebinding to the same store sees the persisted list.
	again := NewPatientData(st)
	if got := again.Appointments(); len(got) != 1 || got[0].ID != appt.ID {
		t.Errorf("appointments after rebind = %+v", got)
	}
}

func TestPatientData_VitalsRoundTrip(t *testing.T) {
	st := store.NewMemStore()
	p := NewPatientData(st)

	in := Vitals{BloodPressure: "120/80", HeartRate: "62", Weight: "70kg"}
	if err := p.SaveVitals(in); err != nil {
		t.Fatal(err)
	}

	if got := NewPatientData(st).Vitals(); got != in {
		t.Errorf("vitals = %+v, want %+v", got, in)
	}
}

func TestPatientData_UploadDocument(t *testing.T) {
	p := NewPatientData(store.NewMemStore())

	if _, err := p.UploadDocument(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.UploadDocument(); err != nil {
		t.Fatal(err)
	}
	if got := p.Documents(); len(got) != 2 {
		t.Errorf("documents = %d, want 2", len(got))
	}
}

// =============================================================================
// DOCTOR DATA TESTS
// =============================================================================

func TestDoctorData_SeedsOnFirstUse(t *testing.T) {
	st := store.NewMemStore()
	d := NewDoctorData(st)

	patients := d.Patients()
	if len(patients) != 2 {
		t.Fatalf("seeded patients = %d, want 2", len(patients))
	}
	if patients[0].Name != "John Doe" || patients[1].Condition != "Diabetes Type 2" {
		t.Errorf("unexpected seed data: %+v", patients)
	}

	// The seed must have been persisted, not regenerated per call.
	again := NewDoctorData(st).Patients()
	if again[0].ID != patients[0].ID {
		t.Error("seeded roster should persist with stable ids")
	}

	if slots := d.Appointments(); len(slots) != 2 {
		t.Errorf("seeded appointments = %d, want 2", len(slots))
	}
}

func TestDoctorData_CorruptCollectionReseeds(t *testing.T) {
	st := store.NewMemStore()
	if err := st.Save(KeyDoctorPatients, []byte("{{{")); err != nil {
		t.Fatal(err)
	}

	patients := NewDoctorData(st).Patients()
	if len(patients) != 2 {
		t.Errorf("corrupt collection should reseed, got %d records", len(patients))
	}
}

func TestDoctorData_AddPrescription(t *testing.T) {
	d := NewDoctorData(store.NewMemStore())

	if got := d.Prescriptions(); len(got) != 0 {
		t.Fatalf("prescriptions should start empty, got %d", len(got))
	}

	rx, err := d.AddPrescription()
	if err != nil {
		t.Fatal(err)
	}
	if rx.Medication != "Lisinopril 10mg" {
		t.Errorf("unexpected canned prescription: %+v", rx)
	}
	if got := d.Prescriptions(); len(got) != 1 {
		t.Errorf("prescriptions = %d, want 1", len(got))
	}
}

// =============================================================================
// ADMIN DATA TESTS
// =============================================================================

func TestAdminData_SeedsAndStats(t *testing.T) {
	a := NewAdminData(store.NewMemStore())

	users := a.Users()
	if len(users) != 3 {
		t.Fatalf("seeded users = %d, want 3", len(users))
	}
	if doctors := a.Doctors(); len(doctors) != 2 {
		t.Errorf("seeded doctors = %d, want 2", len(doctors))
	}

	stats := a.Stats()
	if stats.TotalUsers != 3 || stats.TotalDoctors != 1 || stats.TotalPatients != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.ActiveUsers != 2 {
		t.Errorf("active users = %d, want 2", stats.ActiveUsers)
	}
}

func TestAdminData_ToggleUserStatus(t *testing.T) {
	st := store.NewMemStore()
	a := NewAdminData(st)

	users := a.Users()
	target := users[0]
	if target.Status != "active" {
		t.Fatalf("seed order changed: %+v", target)
	}

	toggled, err := a.ToggleUserStatus(target.ID)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Status != "inactive" {
		t.Errorf("status = %q, want inactive", toggled.Status)
	}

	// Persisted across rebind.
	again := NewAdminData(st).Users()
	if again[0].Status != "inactive" {
		t.Error("toggle should persist")
	}

	if _, err := a.ToggleUserStatus("no-such-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown id error = %v, want ErrUserNotFound", err)
	}
}

func TestAdminData_DeleteUser(t *testing.T) {
	a := NewAdminData(store.NewMemStore())

	users := a.Users()
	if err := a.DeleteUser(users[1].ID); err != nil {
		t.Fatal(err)
	}
	if got := a.Users(); len(got) != 2 {
		t.Errorf("users after delete = %d, want 2", len(got))
	}
	if err := a.DeleteUser("no-such-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown id error = %v, want ErrUserNotFound", err)
	}
}

// =============================================================================
// INSIGHTS TESTS
// =============================================================================

func TestHealthInsight_FromFixedSet(t *testing.T) {
	known := make(map[string]bool)
	for _, s := range HealthInsights() {
		known[s] = true
	}
	if len(known) != 5 {
		t.Fatalf("insight set = %d entries, want 5", len(known))
	}

	for i := 0; i < 50; i++ {
		if !known[HealthInsight()] {
			t.Fatal("HealthInsight returned a string outside the fixed set")
		}
	}
}
