package domain

import "time"

// DanceCategory, AgeGroup and DanceFormat are event-scoped reference data.
// Names are unique per event.
type DanceCategory struct {
	ID      uint   `json:"id"`
	EventID uint   `json:"event_id"`
	Name    string `json:"name"`
}

type AgeGroup struct {
	ID      uint   `json:"id"`
	EventID uint   `json:"event_id"`
	Name    string `json:"name"`
	MinAge  int    `json:"min_age"`
	MaxAge  int    `json:"max_age"`
}

type DanceFormat struct {
	ID      uint   `json:"id"`
	EventID uint   `json:"event_id"`
	Name    string `json:"name"`
}

type Performance struct {
	ID           uint      `json:"id"`
	EventID      uint      `json:"event_id"`
	StudioID     uint      `json:"studio_id"`
	Title        string    `json:"title"`
	DurationSec  int       `json:"duration_sec"`
	OrderOnStage int       `json:"order_on_stage"`
	CategoryID   uint      `json:"category_id"`
	AgeGroupID   uint      `json:"age_group_id"`
	FormatID     uint      `json:"format_id"`
	Dancers      []Dancer  `json:"dancers,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PerformanceUpdate carries the optional fields of a performance PATCH.
// DancerIDs nil leaves the participant list unchanged; an empty non-nil
// slice is rejected upstream by validation.
type PerformanceUpdate struct {
	Title        *string
	DurationSec  *int
	OrderOnStage *int
	CategoryID   *uint
	AgeGroupID   *uint
	FormatID     *uint
	DancerIDs    []uint
}
