package models

import (
	"encoding/json"
	"fmt"
)

type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// PeriodViews is the view count of one trending timeframe. Each variant
// carries only its own count.
type PeriodViews interface {
	Timeframe() Timeframe
	Count() int
}

type DailyViews int

func (v DailyViews) Timeframe() Timeframe { return TimeframeDaily }
func (v DailyViews) Count() int           { return int(v) }

type WeeklyViews int

func (v WeeklyViews) Timeframe() Timeframe { return TimeframeWeekly }
func (v WeeklyViews) Count() int           { return int(v) }

type MonthlyViews int

func (v MonthlyViews) Timeframe() Timeframe { return TimeframeMonthly }
func (v MonthlyViews) Count() int           { return int(v) }

type TrendingEntry struct {
	NovelSummary
	Rank        int
	RankChange  string
	PeriodViews PeriodViews
}

// MarshalJSON writes the period count under a key named after its timeframe,
// e.g. "weekly_views".
func (e TrendingEntry) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(e.NovelSummary)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	out["rank"] = e.Rank
	out["rank_change"] = e.RankChange
	if e.PeriodViews != nil {
		out["timeframe"] = e.PeriodViews.Timeframe()
		out[fmt.Sprintf("%s_views", e.PeriodViews.Timeframe())] = e.PeriodViews.Count()
	}
	return json.Marshal(out)
}
