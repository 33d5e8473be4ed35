// Package engine computes per-week scores. It is a pure function of
// its inputs; persistence is left to the caller.
package engine

import (
	predictionmodel "github.com/footypool/prediction-pool/internal/prediction/model"
	scoremodel "github.com/footypool/prediction-pool/internal/score/model"
	usermodel "github.com/footypool/prediction-pool/internal/user/model"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
)

// Result holds one user's computed counters for a week.
type Result struct {
	UserID             string
	CorrectPredictions int
	TotalPredictions   int
	Score              int
}

// Compute scores one week for the given active users. A prediction
// counts toward total_predictions only when its match has an official
// result; it counts toward correct_predictions when the predicted
// outcome equals that result. Users with no predictions still produce
// a zeroed result. Score equals correct_predictions.
func Compute(
	matches []weekmodel.Match,
	users []usermodel.User,
	predictions []predictionmodel.Prediction,
) []Result {
	decided := make(map[string]weekmodel.Outcome, len(matches))
	for _, m := range matches {
		if m.OfficialResult != nil {
			decided[m.MatchID] = *m.OfficialResult
		}
	}

	byUser := make(map[string][]predictionmodel.Prediction, len(users))
	for _, p := range predictions {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	results := make([]Result, 0, len(users))
	for _, u := range users {
		result := Result{UserID: u.UserID}
		for _, p := range byUser[u.UserID] {
			official, ok := decided[p.MatchID]
			if !ok {
				continue
			}
			result.TotalPredictions++
			if p.PredictedOutcome == official {
				result.CorrectPredictions++
			}
		}
		result.Score = result.CorrectPredictions
		results = append(results, result)
	}

	return results
}

// ToUserScores converts engine results into UserScore rows for a week.
// ScoreID is left empty; the repository assigns it on upsert.
func ToUserScores(weekID string, results []Result) []scoremodel.UserScore {
	scores := make([]scoremodel.UserScore, 0, len(results))
	for _, res := range results {
		scores = append(scores, scoremodel.UserScore{
			UserID:             res.UserID,
			WeekID:             weekID,
			CorrectPredictions: res.CorrectPredictions,
			TotalPredictions:   res.TotalPredictions,
			Score:              res.Score,
		})
	}
	return scores
}
