package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
	"github.com/ludodefgh/planif-neige-public-api/internal/service/mocks"
	"github.com/ludodefgh/planif-neige-public-api/internal/source/planif"
)

type PlanifServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client    *mocks.MockPlanificationClient
	data      *mocks.MockPlanificationStore
	metadata  *mocks.MockMetadataStore
	publisher *mocks.MockPublisher

	service *PlanifService
	now     time.Time
	query   planif.Query
}

func (s *PlanifServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.client = mocks.NewMockPlanificationClient(s.ctrl)
	s.data = mocks.NewMockPlanificationStore(s.ctrl)
	s.metadata = mocks.NewMockMetadataStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.client.EXPECT().ID().Return("planif-neige").AnyTimes()

	s.now = time.Date(2024, 1, 10, 8, 0, 0, 0, time.FixedZone("EST", -5*3600))
	s.query = planif.Query{FromDate: "2024-01-03T08:00:00", Token: "secret"}

	s.service = s.newService(s.publisher)
}

func (s *PlanifServiceTestSuite) newService(publisher Publisher) *PlanifService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewPlanifService(s.client, s.data, s.metadata, publisher, logger, PlanifConfig{
		Token:        "secret",
		LookbackDays: 7,
		Codes:        planif.DefaultCodes,
	})
	svc.now = func() time.Time { return s.now }
	return svc
}

func (s *PlanifServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPlanifServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanifServiceTestSuite))
}

func (s *PlanifServiceTestSuite) expectMetadata() *domain.FetchMetadata {
	var written domain.FetchMetadata
	s.metadata.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.FetchMetadata) error {
			written = *meta
			return nil
		},
	)
	return &written
}

func (s *PlanifServiceTestSuite) expectData(ctx context.Context) *domain.PlanificationDocument {
	var written domain.PlanificationDocument
	s.data.EXPECT().Replace(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *domain.PlanificationDocument) error {
			written = *doc
			return nil
		},
	)
	return &written
}

func (s *PlanifServiceTestSuite) expectPublish(ctx context.Context) *domain.FetchOutcome {
	var published domain.FetchOutcome
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, outcome *domain.FetchOutcome) error {
			published = *outcome
			return nil
		},
	)
	return &published
}

func (s *PlanifServiceTestSuite) TestRun_Success() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{
		"responseStatus": "0",
		"planifications": planif.Fields{
			"planification": []any{
				planif.Fields{"munid": "66023", "coteRueId": "1", "etatDeneig": "2", "dateMaj": "2024-01-09T16:12:45"},
				planif.Fields{"munid": "66023", "coteRueId": "2", "etatDeneig": "0"},
			},
		},
	}, nil)

	doc := s.expectData(ctx)
	meta := s.expectMetadata()
	published := s.expectPublish(ctx)

	outcome, err := s.service.Run(ctx)

	s.Require().NoError(err)
	s.Equal(domain.OutcomeSuccess, outcome.Kind)
	s.Equal(2, outcome.RecordCount)

	s.Len(doc.Planifications, 2)
	s.Equal("1", doc.Planifications[0].CoteRueID)
	s.Equal("2024-01-09T16:12:45", *doc.Planifications[0].DateMaj)
	s.Equal("2024-01-10T08:00:00-05:00", doc.GeneratedAt)

	s.Equal(domain.StatusSuccess, meta.Status)
	s.Equal("2024-01-03T08:00:00", meta.FromDate)
	s.Require().NotNil(meta.RecordCount)
	s.Equal(2, *meta.RecordCount)
	s.Equal("2024-01-10T08:00:00-05:00", meta.LastUpdate)
	s.Empty(meta.Error)

	s.Equal("planif-neige", published.Pipeline)
	s.NotEmpty(published.RunID)
	s.Equal(domain.OutcomeSuccess, published.Kind)
}

func (s *PlanifServiceTestSuite) TestRun_SingleRecordWrapper() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{
		"responseStatus": 0,
		"planifications": planif.Fields{"planification": planif.Fields{"coteRueId": "42"}},
	}, nil)

	doc := s.expectData(ctx)
	meta := s.expectMetadata()
	s.expectPublish(ctx)

	_, err := s.service.Run(ctx)

	s.Require().NoError(err)
	s.Require().Len(doc.Planifications, 1)
	s.Equal("42", doc.Planifications[0].CoteRueID)
	s.Equal(1, *meta.RecordCount)
}

func (s *PlanifServiceTestSuite) TestRun_NoDataIsEmptySuccess() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 8}, nil)

	doc := s.expectData(ctx)
	meta := s.expectMetadata()
	published := s.expectPublish(ctx)

	outcome, err := s.service.Run(ctx)

	s.Require().NoError(err)
	s.Equal(domain.OutcomeEmpty, outcome.Kind)

	s.NotNil(doc.Planifications)
	s.Empty(doc.Planifications)
	s.NotEmpty(doc.GeneratedAt)

	s.Equal(domain.StatusSuccess, meta.Status)
	s.Require().NotNil(meta.RecordCount)
	s.Equal(0, *meta.RecordCount)
	s.Empty(meta.Error)

	s.Equal(domain.OutcomeEmpty, published.Kind)
}

func (s *PlanifServiceTestSuite) TestRun_AbsentWrapperIsEmptySuccess() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 0}, nil)

	doc := s.expectData(ctx)
	meta := s.expectMetadata()
	s.expectPublish(ctx)

	outcome, err := s.service.Run(ctx)

	s.Require().NoError(err)
	s.Equal(domain.OutcomeEmpty, outcome.Kind)
	s.Empty(doc.Planifications)
	s.Equal(domain.StatusSuccess, meta.Status)
	s.Equal(0, *meta.RecordCount)
}

func (s *PlanifServiceTestSuite) TestRun_RateLimited() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 5}, nil)

	meta := s.expectMetadata()
	published := s.expectPublish(ctx)

	outcome, err := s.service.Run(ctx)

	s.Require().Error(err)
	s.ErrorIs(err, planif.ErrRateLimited)
	s.True(outcome.Retryable)
	s.Equal(domain.OutcomeError, outcome.Kind)

	s.Equal(domain.StatusError, meta.Status)
	s.Equal("Rate limit exceeded - wait 5 minutes", meta.Error)
	s.Nil(meta.RecordCount)
	s.Empty(meta.FromDate)

	s.True(published.Retryable)
	s.Equal(domain.OutcomeError, published.Kind)
}

func (s *PlanifServiceTestSuite) TestRun_BusinessErrors() {
	cases := map[string]struct {
		resp    planif.Fields
		message string
	}{
		"missing code":   {planif.Fields{}, "Missing return code in response"},
		"access denied":  {planif.Fields{"responseStatus": 1}, "Access denied - invalid token"},
		"invalid access": {planif.Fields{"responseStatus": 2}, "Invalid access - check parameters"},
		"invalid date":   {planif.Fields{"responseStatus": 3}, "Invalid date format"},
		"unknown":        {planif.Fields{"responseStatus": 42}, "Unknown error code: 42"},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			ctx := context.Background()

			s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(tc.resp, nil)
			meta := s.expectMetadata()
			s.expectPublish(ctx)

			outcome, err := s.service.Run(ctx)

			s.Require().Error(err)
			s.Equal(tc.message, err.Error())
			s.False(outcome.Retryable)
			s.Equal(domain.StatusError, meta.Status)
			s.Equal(tc.message, meta.Error)
		})
	}
}

func (s *PlanifServiceTestSuite) TestRun_TransportError() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(nil, errors.New("execute request: connection refused"))

	meta := s.expectMetadata()
	s.expectPublish(ctx)

	outcome, err := s.service.Run(ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "call GetPlanificationsForDate")
	s.Equal(domain.OutcomeError, outcome.Kind)
	s.Equal(domain.StatusError, meta.Status)
	s.Equal("call GetPlanificationsForDate: execute request: connection refused", meta.Error)
}

func (s *PlanifServiceTestSuite) TestRun_DataWriteFailureIsRecorded() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 8}, nil)
	s.data.EXPECT().Replace(ctx, gomock.Any()).Return(errors.New("disk full"))
	meta := s.expectMetadata()
	s.expectPublish(ctx)

	_, err := s.service.Run(ctx)

	s.Require().Error(err)
	s.Equal(domain.StatusError, meta.Status)
	s.Equal("save planifications: disk full", meta.Error)
}

func (s *PlanifServiceTestSuite) TestRun_MetadataWriteFailure() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 8}, nil)
	s.expectData(ctx)
	s.metadata.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))
	published := s.expectPublish(ctx)

	outcome, err := s.service.Run(ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "save metadata")
	s.Equal(domain.OutcomeError, outcome.Kind)
	s.Equal(domain.OutcomeError, published.Kind)
}

func (s *PlanifServiceTestSuite) TestRun_PublishFailureDoesNotFailRun() {
	ctx := context.Background()

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 8}, nil)
	s.expectData(ctx)
	s.expectMetadata()
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

	_, err := s.service.Run(ctx)

	s.NoError(err)
}

func (s *PlanifServiceTestSuite) TestRun_PublisherNil() {
	ctx := context.Background()
	service := s.newService(nil)

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 8}, nil)
	s.expectData(ctx)
	s.expectMetadata()

	outcome, err := service.Run(ctx)

	s.NoError(err)
	s.Equal(domain.OutcomeEmpty, outcome.Kind)
}

func (s *PlanifServiceTestSuite) TestRun_CustomStatusCodes() {
	ctx := context.Background()
	codes := planif.DefaultCodes
	codes.NoData = 9

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	service := NewPlanifService(s.client, s.data, s.metadata, nil, logger, PlanifConfig{
		Token: "secret", LookbackDays: 7, Codes: codes,
	})
	service.now = func() time.Time { return s.now }

	s.client.EXPECT().GetPlanificationsForDate(ctx, s.query).Return(planif.Fields{"responseStatus": 9}, nil)
	s.expectData(ctx)
	meta := s.expectMetadata()

	_, err := service.Run(ctx)

	s.NoError(err)
	s.Equal(domain.StatusSuccess, meta.Status)
}
