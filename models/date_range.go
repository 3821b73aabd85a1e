// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the only accepted date format, both for user input and for
// directory names under the data root.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates start and end to midnight UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

// Days returns every calendar date from Start to End, both included.
// An inverted range yields no days.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := truncateDay(r.Start); !d.After(truncateDay(r.End)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartString formats Start with DateLayout.
func (r DateRange) StartString() string {
	return r.Start.Format(DateLayout)
}

// EndString formats End with DateLayout.
func (r DateRange) EndString() string {
	return r.End.Format(DateLayout)
}

func (r DateRange) String() string {
	return r.StartString() + ".." + r.EndString()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
