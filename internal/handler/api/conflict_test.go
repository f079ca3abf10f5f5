//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"dealdesk/internal/domain/user"
	"dealdesk/internal/handler/api"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"
	"dealdesk/tests/common/builder"
	"dealdesk/tests/common/httptest"
	commandsmock "dealdesk/tests/mock/commands"
	queriesmock "dealdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConflictHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockConflictCommands
	mockQueries  *queriesmock.MockConflictQueries
	handler      *api.ConflictHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *ConflictHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()
	s.role = user.RoleCreator

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockConflictCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockConflictQueries(s.mockCtrl)
	s.handler = api.NewConflictHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}

	s.router.GET("/conflicts", authMiddleware, s.handler.List)
	s.router.GET("/conflicts/summary", authMiddleware, s.handler.Summary)
	s.router.GET("/conflicts/:id", authMiddleware, s.handler.Get)
	s.router.POST("/conflicts/:id/resolve", authMiddleware, s.handler.Resolve)

	adminGate := middleware.NewAuthMiddleware(nil).RequireRoleAtLeast(user.RoleAdmin)
	s.router.POST("/admin/users/:id/reconcile", authMiddleware, adminGate, s.handler.Recompute)
}

func (s *ConflictHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConflictHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConflictHandlerTestSuite))
}

func (s *ConflictHandlerTestSuite) TestList() {
	s.Run("success: defaults to active conflicts", func() {
		item := builder.NewConflictBuilder().BuildListItemQuery()
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, queries.StatusFilter("active")).
			Return([]*queries.ConflictListItem{&item}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts", nil, "token")

		var res []*resdto.ConflictListItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(item.ID.String(), res[0].ID)
		s.Equal("BLOCK", res[0].Severity)
		s.Equal("Winter campaign", res[0].ConflictingRuleDealTitle)
		s.Equal("Pulse Athletics", res[0].ConflictingRuleBrandName)
		s.Equal(item.SuggestedResolutions, res[0].SuggestedResolutions)
		s.Require().NotNil(res[0].Overlap.Start)
		s.Equal("CATEGORY", res[0].Overlap.MatchedScope)
	})

	s.Run("success: status filter is case-insensitive", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, queries.StatusFilter("resolved")).
			Return([]*queries.ConflictListItem{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts?status=RESOLVED", nil, "token")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("success: deal_id switches to the per-deal listing", func() {
		dealID := uuid.New()
		s.mockQueries.EXPECT().
			ListByDeal(gomock.Any(), s.userID, dealID, queries.StatusFilter("all")).
			Return([]*queries.ConflictListItem{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts?status=all&deal_id="+dealID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("error: invalid status filter", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, queries.StatusFilter("stale")).
			Return(nil, queries.ErrInvalidStatusFilter)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts?status=stale", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: malformed deal_id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts?deal_id=not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid deal_id")
	})

	s.Run("error: unknown deal", func() {
		dealID := uuid.New()
		s.mockQueries.EXPECT().
			ListByDeal(gomock.Any(), s.userID, dealID, queries.StatusFilter("active")).
			Return(nil, queries.ErrDealNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts?deal_id="+dealID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Deal not found")
	})

	s.Run("error: unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ConflictHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewConflictBuilder().BuildViewQuery()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, view.ID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts/"+view.ID.String(), nil, "token")

		var res resdto.ConflictResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(view.ID.String(), res.ID)
		s.Equal(view.TargetDealTitle, res.TargetDealTitle)
		s.NotEmpty(res.SuggestedResolutions)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, id).
			Return(nil, queries.ErrConflictNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Conflict not found")
	})

	s.Run("error: malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ConflictHandlerTestSuite) TestResolve() {
	s.Run("success: returns the resolved view", func() {
		cb := builder.NewConflictBuilder()
		cb.Status = "RESOLVED"
		view := cb.BuildViewQuery()

		s.mockCommands.EXPECT().
			ResolveConflict(gomock.Any(), view.ID, s.userID).
			Return(nil)
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, view.ID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conflicts/"+view.ID.String()+"/resolve", nil, "token")

		var res resdto.ConflictResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("RESOLVED", res.Status)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			ResolveConflict(gomock.Any(), id, s.userID).
			Return(commands.ErrConflictNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conflicts/"+id.String()+"/resolve", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Conflict not found")
	})

	s.Run("error: already resolved", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			ResolveConflict(gomock.Any(), id, s.userID).
			Return(commands.ErrConflictAlreadyResolved)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conflicts/"+id.String()+"/resolve", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already resolved")
	})

	s.Run("error: unexpected failure", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			ResolveConflict(gomock.Any(), id, s.userID).
			Return(errors.New("boom"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conflicts/"+id.String()+"/resolve", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Resolve conflict failed")
	})
}

func (s *ConflictHandlerTestSuite) TestSummary() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().
			GetSummary(gomock.Any(), s.userID).
			Return(&queries.ConflictSummary{ActiveCount: 3, BlockCount: 1, WarnCount: 2}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts/summary", nil, "token")

		var res resdto.ConflictSummaryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.EqualValues(3, res.ActiveCount)
		s.EqualValues(1, res.BlockCount)
		s.EqualValues(2, res.WarnCount)
	})
}

func (s *ConflictHandlerTestSuite) TestRecompute() {
	s.Run("success: admin triggers a full pass", func() {
		s.role = user.RoleAdmin
		target := uuid.New()
		s.mockCommands.EXPECT().
			Recompute(gomock.Any(), target).
			Return(&commands.ReconcileStats{Inserted: 2, Refreshed: 1, AutoResolved: 1}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/"+target.String()+"/reconcile", nil, "token")

		var res resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(2, res.ConflictsDetected)
		s.Equal(1, res.ConflictsRefreshed)
		s.Equal(1, res.ConflictsAutoResolved)
	})

	s.Run("error: creator is forbidden", func() {
		s.role = user.RoleCreator
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/"+uuid.New().String()+"/reconcile", nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
		s.Contains(w.Body.String(), "Insufficient permissions")
	})

	s.Run("error: invalid user id", func() {
		s.role = user.RoleAdmin
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/not-a-uuid/reconcile", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

