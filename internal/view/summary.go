package view

import "toolvision/internal/models"

// SummaryView is the batch summary as displayed: the three duplicate
// buckets are folded into Duplicates.
type SummaryView struct {
	Total      int
	Complete   int
	Missing    int
	Extra      int
	Mixed      int
	Duplicates int
	Errors     int
}

// Summarize uses the backend summary when present and counts result
// statuses otherwise.
func Summarize(batch *models.BatchResult) SummaryView {
	if batch == nil {
		return SummaryView{}
	}
	s := batch.Summary
	if s == nil {
		s = countStatuses(batch.Results)
	}
	return SummaryView{
		Total:      len(batch.Results),
		Complete:   s.Complete,
		Missing:    s.Missing,
		Extra:      s.Extra,
		Mixed:      s.Mixed,
		Duplicates: s.Duplicates + s.DuplicatesOnly + s.MissingDuplicates,
		Errors:     s.Errors,
	}
}

func countStatuses(results []models.AnalysisResult) *models.Summary {
	var s models.Summary
	for _, r := range results {
		switch r.Status.Normalize() {
		case models.StatusComplete:
			s.Complete++
		case models.StatusMissing:
			s.Missing++
		case models.StatusExtra:
			s.Extra++
		case models.StatusMixed:
			s.Mixed++
		case models.StatusDuplicates:
			s.Duplicates++
		case models.StatusDuplicatesOnly:
			s.DuplicatesOnly++
		case models.StatusMissingDuplicates:
			s.MissingDuplicates++
		case models.StatusError:
			s.Errors++
		}
	}
	return &s
}
