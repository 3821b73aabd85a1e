// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthCategory is one daily health and wellness document. The string value
// is also the file name stem inside data/<date>/health/.
type HealthCategory string

const (
	HealthSummary     HealthCategory = "summary"
	HealthSteps       HealthCategory = "steps"
	HealthHeartRate   HealthCategory = "hr"
	HealthBodyBattery HealthCategory = "bodybattery"
	HealthFloors      HealthCategory = "floors"
	HealthRestingHR   HealthCategory = "rhr"
	HealthSleep       HealthCategory = "sleep"
	HealthStress      HealthCategory = "stress"
	HealthRespiration HealthCategory = "respiration"
	HealthSpO2        HealthCategory = "spo2"
	HealthMaxMetrics  HealthCategory = "maxmetrics"
)

// HealthCategories is the fixed export order for a single day.
var HealthCategories = []HealthCategory{
	HealthSummary,
	HealthSteps,
	HealthHeartRate,
	HealthBodyBattery,
	HealthFloors,
	HealthRestingHR,
	HealthSleep,
	HealthStress,
	HealthRespiration,
	HealthSpO2,
	HealthMaxMetrics,
}

// FileName returns "<category>.json".
func (c HealthCategory) FileName() string {
	return string(c) + ".json"
}
