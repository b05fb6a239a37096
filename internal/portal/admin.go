// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jeranaias/careconnect-tui/internal/auth"
	"github.com/jeranaias/careconnect-tui/internal/store"
)

// Store keys for the admin dashboard.
const (
	KeyAdminUsers   = "admin_users"
	KeyAdminDoctors = "admin_doctors"
)

// ErrUserNotFound is returned when an admin operation names an unknown user.
var ErrUserNotFound = errors.New("user not found")

// AdminData is the admin dashboard's view of the store.
type AdminData struct {
	users   collection[ManagedUser]
	doctors collection[DoctorProfile]
}

// NewAdminData binds the admin collections to a store.
func NewAdminData(st store.Store) *AdminData {
	return &AdminData{
		users:   collection[ManagedUser]{store: st, key: KeyAdminUsers},
		doctors: collection[DoctorProfile]{store: st, key: KeyAdminDoctors},
	}
}

// Users returns the managed user list, seeding the demo users on first use.
func (a *AdminData) Users() []ManagedUser {
	return a.users.loadOrSeed([]ManagedUser{
		{
			ID:       uuid.NewString(),
			Name:     "John Doe",
			Email:    "john@example.com",
			Role:     "patient",
			Status:   "active",
			JoinDate: "2024-01-01",
			Avatar:   auth.RolePatient.AvatarURL(),
		},
		{
			ID:       uuid.NewString(),
			Name:     "Dr. Sarah Smith",
			Email:    "sarah@example.com",
			Role:     "doctor",
			Status:   "active",
			JoinDate: "2024-01-01",
			Avatar:   auth.RoleDoctor.AvatarURL(),
		},
		{
			ID:       uuid.NewString(),
			Name:     "Jane Wilson",
			Email:    "jane@example.com",
			Role:     "patient",
			Status:   "inactive",
			JoinDate: "2024-01-05",
			Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		},
	})
}

// Doctors returns the doctor directory, seeding the demo profiles on
// first use.
func (a *AdminData) Doctors() []DoctorProfile {
	return a.doctors.loadOrSeed([]DoctorProfile{
		{
			ID:         uuid.NewString(),
			Name:       "Dr. Sarah Smith",
			Specialty:  "General Medicine",
			Patients:   25,
			Status:     "active",
			Rating:     4.8,
			Experience: "8 years",
		},
		{
			ID:         uuid.NewString(),
			Name:       "Dr. Michael Johnson",
			Specialty:  "Cardiology",
			Patients:   18,
			Status:     "active",
			Rating:     4.9,
			Experience: "12 years",
		},
	})
}

// ToggleUserStatus flips a managed user between active and inactive.
func (a *AdminData) ToggleUserStatus(id string) (ManagedUser, error) {
	users := a.Users()
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if users[i].Status == "active" {
			users[i].Status = "inactive"
		} else {
			users[i].Status = "active"
		}
		if err := a.users.save(users); err != nil {
			return ManagedUser{}, err
		}
		return users[i], nil
	}
	return ManagedUser{}, ErrUserNotFound
}

// DeleteUser removes a managed user from the list.
func (a *AdminData) DeleteUser(id string) error {
	users := a.Users()
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrUserNotFound
	}
	return a.users.save(kept)
}

// Stats computes the dashboard counters from the managed user list.
func (a *AdminData) Stats() Stats {
	users := a.Users()
	s := Stats{TotalUsers: len(users)}
	for _, u := range users {
		switch u.Role {
		case "doctor":
			s.TotalDoctors++
		case "patient":
			s.TotalPatients++
		}
		if u.Status == "active" {
			s.ActiveUsers++
		}
	}
	return s
}
