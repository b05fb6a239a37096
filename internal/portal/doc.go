// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package portal holds the per-dashboard data collections.
//
// Each dashboard view owns a handful of keyed blob collections (the
// patient's appointments, the doctor's roster, the admin's user list)
// persisted through the store package. These are per-view caches with no
// shared invariants: a malformed collection simply reads as empty and, for
// the collections that ship with demo data, gets re-seeded.
//
// # Keys
//
//   - patient_appointments, patient_health_data, patient_documents
//   - doctor_patients, doctor_appointments, doctor_prescriptions
//   - admin_users, admin_doctors
package portal
