package approval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jukuhub/studyquest/internal/config"
	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/service/ledgerservice"
	"github.com/jukuhub/studyquest/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingSubmissions sync.Map

// Judge system statuses. APPROVED and REJECTED are terminal; PENDING means
// the verdict is not ready yet.
const (
	judgeApproved = "APPROVED"
	judgeRejected = "REJECTED"
	judgePending  = "PENDING"
)

type Response struct {
	Submission int    `json:"submission"`
	Status     string `json:"status"`
	Exp        int    `json:"exp,omitempty"`
	Points     int    `json:"points,omitempty"`
}

type SubmissionRepo interface {
	FindForProcessing(ctx context.Context, limit uint32) ([]domain.ScoreSubmission, error)
	UpdateStatus(ctx context.Context, submissionID int, status string) error
}

// Granter applies the judged reward through the ledger so that level-ups,
// titles and ranking all follow from an approval.
type Granter interface {
	Grant(ctx context.Context, studentID int, kind string, expDelta, pointsDelta int, counterDeltas map[string]int) (*ledgerservice.GrantResult, error)
}

type Service struct {
	url            string
	submissions    SubmissionRepo
	ledger         Granter
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, submissions SubmissionRepo, ledger Granter, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.JudgeAddress,
		submissions:    submissions,
		ledger:         ledger,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Approval service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processSubmissions(ctx)
		}
	}
}

func (s *Service) processSubmissions(ctx context.Context) {
	submissions, err := s.submissions.FindForProcessing(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch submissions for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, submission := range submissions {
		submission := submission

		if _, loaded := processingSubmissions.LoadOrStore(submission.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingSubmissions.Delete(submission.ID)
				return s.handleSubmission(ctx, submission)
			})
			if err != nil {
				processingSubmissions.Delete(submission.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing submissions", zap.Error(err))
	}
}

func (s *Service) handleSubmission(ctx context.Context, submission domain.ScoreSubmission) error {
	url := s.url + "/api/submissions/" + strconv.Itoa(submission.ID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to process submission %d after %d retries: %w", submission.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(submission, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Warn("Submission not known to judge system yet, retrying", zap.Int("submissionID", submission.ID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to process unknown submission %d after %d retries", submission.ID, maxRetries)

			case http.StatusOK:
				return s.processVerdict(ctx, submission, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("submissionID", submission.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processVerdict(ctx context.Context, submission domain.ScoreSubmission, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Submission != submission.ID {
		return fmt.Errorf("submission id mismatch: expected %d, got %d", submission.ID, response.Submission)
	}

	switch response.Status {
	case judgeApproved:
		if err := s.applyReward(ctx, submission, response); err != nil {
			return fmt.Errorf("failed to apply reward for student %d: %w", submission.StudentID, err)
		}
		return s.submissions.UpdateStatus(ctx, submission.ID, domain.SubmissionProcessed)
	case judgeRejected:
		zap.L().Info("Submission rejected by judge", zap.Int("submissionID", submission.ID))
		return s.submissions.UpdateStatus(ctx, submission.ID, domain.SubmissionInvalid)
	case judgePending:
		zap.L().Info("Submission still pending", zap.Int("submissionID", submission.ID))
		return s.submissions.UpdateStatus(ctx, submission.ID, domain.SubmissionProcessing)
	default:
		zap.L().Warn("Unrecognized status received", zap.Int("submissionID", submission.ID), zap.String("status", response.Status))
		return nil
	}
}

func (s *Service) applyReward(ctx context.Context, submission domain.ScoreSubmission, response Response) error {
	_, err := s.ledger.Grant(ctx, submission.StudentID, domain.KindScore, response.Exp, response.Points, map[string]int{
		domain.CounterWordTest:      1,
		domain.CounterWordTestScore: submission.Score,
	})
	if err != nil {
		return err
	}

	zap.L().Info("Reward applied",
		zap.Int("studentID", submission.StudentID),
		zap.Int("exp", response.Exp),
		zap.Int("points", response.Points),
	)
	return nil
}

func (s *Service) handleRateLimit(submission domain.ScoreSubmission, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("submissionID", submission.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
