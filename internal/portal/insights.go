// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import "math/rand"

// healthInsights are the canned "AI health insight" suggestions shown on
// the patient dashboard.
var healthInsights = []string{
	"Based on your vitals, consider increasing your daily water intake to 8-10 glasses.",
	"Your heart rate looks good! Keep up with regular exercise for cardiovascular health.",
	"Consider scheduling a routine check-up to monitor your blood pressure trends.",
	"Great job maintaining healthy weight! Continue your current diet and exercise routine.",
	"Your temperature is normal. Make sure to get adequate rest for optimal health.",
}

// HealthInsight returns one of the canned suggestions at random.
func HealthInsight() string {
	return healthInsights[rand.Intn(len(healthInsights))]
}

// HealthInsights returns every canned suggestion, for display and tests.
func HealthInsights() []string {
	out := make([]string, len(healthInsights))
	copy(out, healthInsights)
	return out
}
