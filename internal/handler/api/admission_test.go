//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coupon-issuance/internal/handler/api"
	"coupon-issuance/internal/usecase/commands"
	commandsmock "coupon-issuance/tests/mock/commands"
	queriesmock "coupon-issuance/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdmissionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdmissionCommands
	mockQueries  *queriesmock.MockMonitoringQueries
	handler      *api.AdmissionHandler
}

func (s *AdmissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdmissionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMonitoringQueries(s.mockCtrl)
	s.handler = api.NewAdmissionHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/campaigns/:id/admissions", s.handler.Admit)
	s.router.GET("/campaigns/:id/queue-depth", s.handler.QueueDepth)
	s.router.DELETE("/campaigns/:id/coordinator", s.handler.ResetCoordinator)
}

func (s *AdmissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdmissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdmissionHandlerTestSuite))
}

func (s *AdmissionHandlerTestSuite) performAdmit(campaignID, userHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/campaigns/"+campaignID+"/admissions", nil)
	if userHeader != "" {
		req.Header.Set("X-User-ID", userHeader)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AdmissionHandlerTestSuite) TestAdmit_StatusMapping() {
	cases := []struct {
		name       string
		status     commands.AdmissionStatus
		expectCode int
	}{
		{name: "granted is accepted", status: commands.StatusGranted, expectCode: http.StatusAccepted},
		{name: "duplicate is ok", status: commands.StatusDuplicate, expectCode: http.StatusOK},
		{name: "exhausted is conflict", status: commands.StatusExhausted, expectCode: http.StatusConflict},
		{name: "inactive is conflict", status: commands.StatusCampaignInactive, expectCode: http.StatusConflict},
		{name: "unknown campaign is not found", status: commands.StatusCampaignNotFound, expectCode: http.StatusNotFound},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			campaignID, userID := uuid.New(), uuid.New()
			s.mockCommands.EXPECT().TryAdmit(gomock.Any(), userID, campaignID).
				Return(tc.status, nil).Times(1)

			rec := s.performAdmit(campaignID.String(), userID.String())
			s.Equal(tc.expectCode, rec.Code)
			s.Contains(rec.Body.String(), tc.status.String())
		})
	}
}

func (s *AdmissionHandlerTestSuite) TestAdmit_InvalidCampaignID() {
	rec := s.performAdmit("not-a-uuid", uuid.New().String())
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AdmissionHandlerTestSuite) TestAdmit_MissingUserHeader() {
	rec := s.performAdmit(uuid.New().String(), "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AdmissionHandlerTestSuite) TestAdmit_UseCaseError() {
	campaignID, userID := uuid.New(), uuid.New()
	s.mockCommands.EXPECT().TryAdmit(gomock.Any(), userID, campaignID).
		Return(commands.AdmissionStatus(0), commands.ErrAdmissionFailed)

	rec := s.performAdmit(campaignID.String(), userID.String())
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *AdmissionHandlerTestSuite) TestQueueDepth() {
	campaignID := uuid.New()
	s.mockQueries.EXPECT().QueueDepth(gomock.Any(), campaignID).Return(int64(42), nil)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/"+campaignID.String()+"/queue-depth", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"depth":42`)
}

func (s *AdmissionHandlerTestSuite) TestResetCoordinator() {
	campaignID := uuid.New()
	s.mockCommands.EXPECT().ResetCoordinator(gomock.Any(), campaignID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/campaigns/"+campaignID.String()+"/coordinator", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
}
