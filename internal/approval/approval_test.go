package approval

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jukuhub/studyquest/internal/config"
	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/service/ledgerservice"
	"github.com/jukuhub/studyquest/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockSubmissionRepo, *MockGranter, *clients.MockHTTPClientI) {
	cfg := &config.Config{JudgeAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)

	submissions := NewMockSubmissionRepo(ctrl)
	ledger := NewMockGranter(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, submissions, ledger, client)
	return service, submissions, ledger, client
}

func TestService_Start(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestHandleSubmission_Approved(t *testing.T) {
	service, submissions, ledger, client := NewMock(t)
	ctx := context.Background()

	submission := domain.ScoreSubmission{ID: 42, StudentID: 1, Subject: "math", Score: 85, Status: domain.SubmissionNew}

	client.EXPECT().
		Get("http://localhost:8081/api/submissions/42", nil).
		Return(http.StatusOK, []byte(`{"submission":42,"status":"APPROVED","exp":30,"points":15}`), nil, nil)
	ledger.EXPECT().
		Grant(ctx, 1, domain.KindScore, 30, 15, map[string]int{
			domain.CounterWordTest:      1,
			domain.CounterWordTestScore: 85,
		}).
		Return(&ledgerservice.GrantResult{}, nil)
	submissions.EXPECT().UpdateStatus(ctx, 42, domain.SubmissionProcessed).Return(nil)

	assert.NoError(t, service.handleSubmission(ctx, submission))
}

func TestHandleSubmission_Rejected(t *testing.T) {
	service, submissions, _, client := NewMock(t)
	ctx := context.Background()

	submission := domain.ScoreSubmission{ID: 7, StudentID: 1, Score: 10, Status: domain.SubmissionNew}

	client.EXPECT().
		Get("http://localhost:8081/api/submissions/7", nil).
		Return(http.StatusOK, []byte(`{"submission":7,"status":"REJECTED"}`), nil, nil)
	// No Grant expectation: rejected submissions earn nothing.
	submissions.EXPECT().UpdateStatus(ctx, 7, domain.SubmissionInvalid).Return(nil)

	assert.NoError(t, service.handleSubmission(ctx, submission))
}

func TestHandleSubmission_Pending(t *testing.T) {
	service, submissions, _, client := NewMock(t)
	ctx := context.Background()

	submission := domain.ScoreSubmission{ID: 8, StudentID: 1, Score: 50, Status: domain.SubmissionNew}

	client.EXPECT().
		Get("http://localhost:8081/api/submissions/8", nil).
		Return(http.StatusOK, []byte(`{"submission":8,"status":"PENDING"}`), nil, nil)
	submissions.EXPECT().UpdateStatus(ctx, 8, domain.SubmissionProcessing).Return(nil)

	assert.NoError(t, service.handleSubmission(ctx, submission))
}

func TestHandleSubmission_IDMismatch(t *testing.T) {
	service, _, _, client := NewMock(t)
	ctx := context.Background()

	submission := domain.ScoreSubmission{ID: 9, StudentID: 1, Score: 50, Status: domain.SubmissionNew}

	client.EXPECT().
		Get("http://localhost:8081/api/submissions/9", nil).
		Return(http.StatusOK, []byte(`{"submission":10,"status":"APPROVED"}`), nil, nil)

	assert.Error(t, service.handleSubmission(ctx, submission))
}

func TestProcessSubmissions_FetchError(t *testing.T) {
	service, submissions, _, _ := NewMock(t)
	ctx := context.Background()

	submissions.EXPECT().FindForProcessing(ctx, uint32(1000)).Return(nil, assert.AnError)

	// Just must not panic; the error is logged and the tick is skipped.
	service.processSubmissions(ctx)
}
