package interviewService

import (
	"InterviewGolang/internal/api/interview"
	"InterviewGolang/internal/entity"
	contextPkg "InterviewGolang/pkg/context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const reportCacheTTL = time.Hour

func (s *interviewService) GetReport(ctx context.Context, sessionID string, userID string) (interview.ReportResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.interviewRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return interview.ReportResponse{}, err
	}

	session, err := s.ownedSession(ctx, repo, sessionID, userID)
	if err != nil {
		return interview.ReportResponse{}, err
	}

	if cached, err := s.redis.GetCachedReport(ctx, sessionID); err == nil && cached != "" {
		var report interview.ReportResponse
		if err := json.Unmarshal([]byte(cached), &report); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Cached report is corrupt, rebuilding")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
			}).Debug("Serving cached report")
			s.presignAnswerAudio(requestID, report.Answers)
			return report, nil
		}
	}

	answers, err := repo.Answer.GetAnswersBySessionID(ctx, sessionID)
	if err != nil {
		return interview.ReportResponse{}, err
	}

	report := s.buildReport(ctx, requestID, session, answers)

	if raw, err := json.Marshal(report); err == nil {
		if err := s.redis.SetCachedReport(ctx, sessionID, string(raw), reportCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Failed to cache report")
		}
	}

	s.presignAnswerAudio(requestID, report.Answers)

	return report, nil
}

func (s *interviewService) buildReport(ctx context.Context, requestID string, session entity.InterviewSession, answers []entity.Answer) interview.ReportResponse {
	report := interview.ReportResponse{
		SessionID:           session.ID,
		TargetRole:          session.TargetRole,
		PostureDistribution: mergeDistributions(answers, func(a entity.Answer) map[string]int { return a.PostureSummary }),
		EmotionDistribution: mergeDistributions(answers, func(a entity.Answer) map[string]int { return a.EmotionSummary }),
		Answers:             make([]interview.AnswerResponse, 0, len(answers)),
		GeneratedAt:         time.Now(),
	}

	var totalScore int
	for _, answer := range answers {
		totalScore += answer.Score
		report.Answers = append(report.Answers, makeAnswerResponse(answer))
	}

	if len(answers) > 0 {
		report.OverallScore = int(math.Round(float64(totalScore) / float64(len(answers))))
	}

	report.Summary = s.generateSummary(ctx, requestID, session.TargetRole, report, answers)

	return report
}

// mergeDistributions averages the per-answer percentage distributions so
// each answer weighs the same in the session-level view.
func mergeDistributions(answers []entity.Answer, pick func(entity.Answer) map[string]int) map[string]int {
	merged := make(map[string]int)
	if len(answers) == 0 {
		return merged
	}

	totals := make(map[string]int)
	for _, answer := range answers {
		for label, pct := range pick(answer) {
			totals[label] += pct
		}
	}

	for label, total := range totals {
		merged[label] = int(math.Round(float64(total) / float64(len(answers))))
	}

	return merged
}

func (s *interviewService) generateSummary(ctx context.Context, requestID string, targetRole string, report interview.ReportResponse, answers []entity.Answer) string {
	if len(answers) == 0 {
		return "No answers were recorded in this session."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `You are an interview coach. Write a short coaching summary (3-5 sentences)
for a candidate who just finished a mock interview for the role of %q.
Overall score: %d/100.
Posture during answers (percent of observations): %v.
Facial expression during answers (percent of observations): %v.
Per-answer feedback:`, targetRole, report.OverallScore, report.PostureDistribution, report.EmotionDistribution)

	for i, answer := range answers {
		fmt.Fprintf(&sb, "\n%d. score %d: %s", i+1, answer.Score, answer.Feedback)
	}
	sb.WriteString("\nAddress the candidate directly. Plain text only, no markdown.")

	summary, err := s.gemini.GenerateText(ctx, sb.String())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate report summary")
		return ""
	}

	return strings.TrimSpace(summary)
}

func (s *interviewService) presignAnswerAudio(requestID string, answers []interview.AnswerResponse) {
	for i, answer := range answers {
		if answer.AudioURL == "" {
			continue
		}

		url, err := s.s3.PresignUrl(answer.AudioURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to presign answer audio link")
			continue
		}
		answers[i].AudioURL = url
	}
}
