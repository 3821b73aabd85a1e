// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ActivitySummary is a single entry of the remote activity search result.
//
// Only the identifier and the local start timestamp are interpreted; Raw keeps
// the document exactly as the remote service returned it so that it can be
// written to disk without any transformation.
type ActivitySummary struct {
	// ActivityID is the remote identifier of the recorded exercise session.
	ActivityID int64 `json:"activityId"`

	// StartTimeLocal is the local start time in "YYYY-MM-DD hh:mm:ss" form.
	StartTimeLocal string `json:"startTimeLocal"`

	// Raw is the untouched JSON document of this list entry.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the interpreted fields and keeps a copy of the raw
// document in Raw.
func (a *ActivitySummary) UnmarshalJSON(b []byte) error {
	type plain ActivitySummary
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	*a = ActivitySummary(p)
	a.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// MarshalJSON returns Raw when present so that re-encoding a summary never
// loses fields the exporter does not know about.
func (a ActivitySummary) MarshalJSON() ([]byte, error) {
	if len(a.Raw) > 0 {
		return a.Raw, nil
	}

	type plain ActivitySummary
	return json.Marshal(plain(a))
}

// Date returns the calendar date the activity belongs to: the first ten
// characters of StartTimeLocal. The prefix must be a valid YYYY-MM-DD date,
// since it becomes a directory name.
func (a ActivitySummary) Date() (string, error) {
	if len(a.StartTimeLocal) < len(DateLayout) {
		return "", fmt.Errorf("%w: activity %d has start time %q", ErrInvalidActivity, a.ActivityID, a.StartTimeLocal)
	}

	date := a.StartTimeLocal[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", fmt.Errorf("%w: activity %d has start time %q", ErrInvalidActivity, a.ActivityID, a.StartTimeLocal)
	}
	return date, nil
}

// ID returns ActivityID in its decimal string form, as used in file names.
func (a ActivitySummary) ID() string {
	return strconv.FormatInt(a.ActivityID, 10)
}

// ActivityFormat selects the representation requested from the download
// endpoint.
type ActivityFormat int

const (
	// GPX is the GPS Exchange Format export.
	GPX ActivityFormat = iota
	// TCX is the Training Center XML export.
	TCX
	// Original is the file uploaded by the device (FIT).
	Original
)

// ActivityFormats lists the download formats in the order they are written.
var ActivityFormats = []ActivityFormat{GPX, TCX, Original}

// Extension returns the file extension used on disk for the format.
func (f ActivityFormat) Extension() string {
	switch f {
	case GPX:
		return "gpx"
	case TCX:
		return "tcx"
	case Original:
		return "fit"
	default:
		return "bin"
	}
}

func (f ActivityFormat) String() string {
	switch f {
	case GPX:
		return "GPX"
	case TCX:
		return "TCX"
	case Original:
		return "ORIGINAL"
	default:
		return "UNKNOWN"
	}
}

// ActivityDocument names one of the JSON documents exported per activity.
type ActivityDocument string

const (
	ActivityRecord  ActivityDocument = ""
	ActivityWeather ActivityDocument = "_weather"
	ActivityHRZones ActivityDocument = "_hr-zones"
	ActivityDetails ActivityDocument = "_details"
)

// FileName builds "<id><suffix>.json" for the document.
func (d ActivityDocument) FileName(activityID string) string {
	return activityID + string(d) + ".json"
}

// Category returns the label recorded in the export journal.
func (d ActivityDocument) Category() string {
	if d == ActivityRecord {
		return "activity"
	}
	return "activity" + string(d)
}
